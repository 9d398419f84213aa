// Package entities models the things that live on a level: the component set
// attached to each entity, the snapshot taken when a level is vacated, and
// the World container the lifecycle manager reads and writes.
package entities

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/grid"
)

// Archetype classifies a snapshot by its defining component
type Archetype string

const (
	ArchetypeEnemy     Archetype = "enemy"
	ArchetypeItem      Archetype = "item"
	ArchetypeStaircase Archetype = "staircase"
	ArchetypeOther     Archetype = "other"
	ArchetypePlayer    Archetype = "player"
)

// Direction is the way a staircase leads
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Glyph returns the map symbol of a staircase in this direction
func (d Direction) Glyph() rune {
	if d == Up {
		return '<'
	}
	return '>'
}

// Health tracks hit points
type Health struct {
	Current int
	Maximum int
}

// IsAlive reports whether any hit points remain
func (h Health) IsAlive() bool {
	return h.Current > 0
}

// Combat holds the stats combat resolution reads
type Combat struct {
	Attack  int
	Defense int
}

// Enemy marks a hostile creature. The effect fields describe an optional
// status effect the creature applies on hit.
type Enemy struct {
	Type              string
	InflictsEffect    string
	EffectProbability int
	EffectMagnitude   int
	EffectDuration    int
}

// ItemKind separates consumables from equipment
type ItemKind string

const (
	ItemConsumable ItemKind = "consumable"
	ItemEquipment  ItemKind = "equipment"
)

// Item marks something that can be picked up
type Item struct {
	Name  string
	Kind  ItemKind
	Value int
}

// Staircase links a tile to another depth
type Staircase struct {
	Direction   Direction
	TargetDepth int
}

// Renderable is how an entity is drawn
type Renderable struct {
	Glyph rune
	Color string
}

// DefaultSpeed is the actor speed at which one action is earned per tick
const DefaultSpeed = 100

// Actor gives an entity turns
type Actor struct {
	Energy int
	Speed  int
}

// Behavior is the AI routine an entity follows
type Behavior string

const (
	BehaviorWander Behavior = "wander"
	BehaviorChase  Behavior = "chase"
	BehaviorFlee   Behavior = "flee"
	BehaviorPatrol Behavior = "patrol"
	BehaviorIdle   Behavior = "idle"
)

// AI selects a behaviour
type AI struct {
	Behavior Behavior
}

// Player marks the player entity. It is never captured in a snapshot.
type Player struct {
	Name string
}

// Components is the closed set of data an entity may carry. A nil field means
// the component is absent.
type Components struct {
	Position       *grid.Point
	Health         *Health
	Combat         *Combat
	Enemy          *Enemy
	Item           *Item
	Staircase      *Staircase
	Renderable     *Renderable
	Actor          *Actor
	AI             *AI
	Name           string
	BlocksMovement bool
	Player         *Player
}

// Archetype derives the snapshot classification. Enemy wins over Item, and
// Item over Staircase.
func (c Components) Archetype() Archetype {
	switch {
	case c.Player != nil:
		return ArchetypePlayer
	case c.Enemy != nil:
		return ArchetypeEnemy
	case c.Item != nil:
		return ArchetypeItem
	case c.Staircase != nil:
		return ArchetypeStaircase
	default:
		return ArchetypeOther
	}
}

// Alive is false only for entities whose health has run out
func (c Components) Alive() bool {
	return c.Health == nil || c.Health.IsAlive()
}

// Clone returns a deep copy so the result shares no pointers with c
func (c Components) Clone() Components {
	out := c
	out.Position = clonePtr(c.Position)
	out.Health = clonePtr(c.Health)
	out.Combat = clonePtr(c.Combat)
	out.Enemy = clonePtr(c.Enemy)
	out.Item = clonePtr(c.Item)
	out.Staircase = clonePtr(c.Staircase)
	out.Renderable = clonePtr(c.Renderable)
	out.Actor = clonePtr(c.Actor)
	out.AI = clonePtr(c.AI)
	out.Player = clonePtr(c.Player)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// At is a helper for building a Position component
func At(p grid.Point) *grid.Point {
	return &p
}
