package entities

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
)

//go:generate mockgen -destination=mock/mock_world.go -package=entitiesmock github.com/KirkDiggler/rpg-dungeon/internal/entities World

// Entity is a live entity in the world
type Entity struct {
	ID         string
	Components Components
}

var _ core.Entity = (*Entity)(nil)

// GetID returns the entity identifier
func (e *Entity) GetID() string {
	return e.ID
}

// GetType returns the archetype name
func (e *Entity) GetType() string {
	return string(e.Components.Archetype())
}

// World is the container of live entities for the active level. Returned
// entities are owned by the world and must not be retained across a level
// transition.
type World interface {
	// Spawn adds an entity with a copy of the given components
	Spawn(c Components) *Entity

	// Destroy removes an entity, reporting whether it existed
	Destroy(id string) bool

	// Get returns an entity by ID
	Get(id string) (*Entity, bool)

	// SetPosition moves an entity
	SetPosition(id string, p grid.Point) error

	// NonPlayer returns every entity without the Player component that has a
	// position, in spawn order
	NonPlayer() []*Entity

	// AtPosition returns the entities standing on p in spawn order
	AtPosition(p grid.Point) []*Entity
}

// MemoryWorld implements World with a map and an insertion-order index. It
// is not safe for concurrent use.
type MemoryWorld struct {
	ids   idgen.Generator
	byID  map[string]*Entity
	order []string
}

var _ World = (*MemoryWorld)(nil)

// NewMemoryWorld creates an empty world. A nil generator falls back to
// sequential ent_N identifiers.
func NewMemoryWorld(ids idgen.Generator) *MemoryWorld {
	if ids == nil {
		ids = idgen.NewSequential("ent")
	}
	return &MemoryWorld{
		ids:  ids,
		byID: make(map[string]*Entity),
	}
}

// Spawn adds an entity with a copy of the given components
func (w *MemoryWorld) Spawn(c Components) *Entity {
	e := &Entity{ID: w.ids.Generate(), Components: c.Clone()}
	w.byID[e.ID] = e
	w.order = append(w.order, e.ID)
	return e
}

// Destroy removes an entity
func (w *MemoryWorld) Destroy(id string) bool {
	if _, ok := w.byID[id]; !ok {
		return false
	}
	delete(w.byID, id)
	w.order = slices.DeleteFunc(w.order, func(v string) bool { return v == id })
	return true
}

// Get returns an entity by ID
func (w *MemoryWorld) Get(id string) (*Entity, bool) {
	e, ok := w.byID[id]
	return e, ok
}

// SetPosition moves an entity
func (w *MemoryWorld) SetPosition(id string, p grid.Point) error {
	e, ok := w.byID[id]
	if !ok {
		return errors.NotFoundf("entity %s not found", id)
	}
	e.Components.Position = At(p)
	return nil
}

// NonPlayer returns positioned entities that are not the player
func (w *MemoryWorld) NonPlayer() []*Entity {
	var out []*Entity
	for _, id := range w.order {
		e := w.byID[id]
		if e.Components.Player == nil && e.Components.Position != nil {
			out = append(out, e)
		}
	}
	return out
}

// AtPosition returns the entities standing on p
func (w *MemoryWorld) AtPosition(p grid.Point) []*Entity {
	var out []*Entity
	for _, id := range w.order {
		e := w.byID[id]
		if e.Components.Position != nil && *e.Components.Position == p {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entities
func (w *MemoryWorld) Len() int {
	return len(w.byID)
}
