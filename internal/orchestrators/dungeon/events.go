package dungeon

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the configured bus. The event target is always
// a *LevelRef naming the depth the event is about.
const (
	// EventLevelCompleted fires after every successful descent for the
	// depth that was left
	EventLevelCompleted = "dungeon.level_completed"

	// EventDepthRecord fires when a descent beats the personal best
	EventDepthRecord = "dungeon.depth_record"

	// EventCompleted fires each time a descent is attempted from the
	// victory depth outside endless mode
	EventCompleted = "dungeon.completed"

	// EventLevelEntered fires after any successful transition
	EventLevelEntered = "dungeon.level_entered"
)

// LevelRef identifies a depth as an event target
type LevelRef struct {
	Depth int
}

var _ core.Entity = (*LevelRef)(nil)

// GetID returns level_<depth>
func (l *LevelRef) GetID() string {
	return fmt.Sprintf("level_%d", l.Depth)
}

// GetType returns dungeon_level
func (l *LevelRef) GetType() string {
	return "dungeon_level"
}

// DepthOf extracts the depth from an event published by the dungeon
func DepthOf(evt events.Event) (int, bool) {
	ref, ok := evt.Target().(*LevelRef)
	if !ok || ref == nil {
		return 0, false
	}
	return ref.Depth, true
}

func (m *Manager) publish(ctx context.Context, eventType string, source core.Entity, depth int) {
	evt := events.NewGameEvent(eventType, source, &LevelRef{Depth: depth})
	if err := m.bus.Publish(ctx, evt); err != nil {
		slog.Warn("Failed to publish dungeon event",
			"event", eventType,
			"depth", depth,
			"error", err,
		)
	}
}
