package entities

// Snapshot is the frozen state of one non-player entity, taken when its level
// is vacated and replayed when the level is entered again
type Snapshot struct {
	Archetype  Archetype
	Components Components
	Alive      bool
}

// Capture freezes the components of an entity. The player marker is dropped.
func Capture(c Components) Snapshot {
	frozen := c.Clone()
	frozen.Player = nil
	return Snapshot{
		Archetype:  frozen.Archetype(),
		Components: frozen,
		Alive:      frozen.Alive(),
	}
}

// CaptureAll snapshots every entity in order
func CaptureAll(list []*Entity) []Snapshot {
	snapshots := make([]Snapshot, 0, len(list))
	for _, e := range list {
		snapshots = append(snapshots, Capture(e.Components))
	}
	return snapshots
}
