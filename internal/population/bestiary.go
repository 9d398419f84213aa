package population

import (
	_ "embed"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

//go:embed bestiary.yaml
var defaultBestiary []byte

// EffectTemplate is the status effect an enemy applies on hit
type EffectTemplate struct {
	Kind        string `yaml:"kind"`
	Probability int    `yaml:"probability"`
	Magnitude   int    `yaml:"magnitude"`
	Duration    int    `yaml:"duration"`
}

// EnemyTemplate holds the depth 1 stats of a creature type
type EnemyTemplate struct {
	Type     string          `yaml:"type"`
	Name     string          `yaml:"name"`
	Glyph    string          `yaml:"glyph"`
	Color    string          `yaml:"color"`
	Health   int             `yaml:"health"`
	Attack   int             `yaml:"attack"`
	Defense  int             `yaml:"defense"`
	Behavior string          `yaml:"behavior"`
	Effect   *EffectTemplate `yaml:"effect"`
}

// ItemTemplate describes something that can lie on the floor
type ItemTemplate struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Value int    `yaml:"value"`
}

// Bestiary is the full spawn table
type Bestiary struct {
	Enemies     []EnemyTemplate `yaml:"enemies"`
	Consumables []ItemTemplate  `yaml:"consumables"`
	Equipment   []ItemTemplate  `yaml:"equipment"`
}

// DefaultBestiary parses the built-in table
func DefaultBestiary() (*Bestiary, error) {
	return ParseBestiary(defaultBestiary)
}

// LoadBestiary reads a bestiary from a YAML file
func LoadBestiary(path string) (*Bestiary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read bestiary")
	}
	return ParseBestiary(data)
}

// ParseBestiary decodes and validates a YAML bestiary
func ParseBestiary(data []byte) (*Bestiary, error) {
	var b Bestiary
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse bestiary")
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate checks that every template can be spawned
func (b *Bestiary) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(b.Enemies) == 0 {
		vb.RequiredField("enemies")
	}
	for i, e := range b.Enemies {
		if e.Type == "" {
			vb.Fieldf("enemies", "entry %d has no type", i)
		}
		if utf8.RuneCountInString(e.Glyph) != 1 {
			vb.Fieldf("enemies", "%s glyph must be a single character", e.Type)
		}
		if e.Health <= 0 {
			vb.Fieldf("enemies", "%s health must be greater than 0", e.Type)
		}
		if e.Behavior != "" && !validBehavior(entities.Behavior(e.Behavior)) {
			vb.Fieldf("enemies", "%s has unknown behavior %q", e.Type, e.Behavior)
		}
	}
	for _, list := range [][]ItemTemplate{b.Consumables, b.Equipment} {
		for _, it := range list {
			if utf8.RuneCountInString(it.Glyph) != 1 {
				vb.Fieldf("items", "%s glyph must be a single character", it.Name)
			}
		}
	}

	return vb.Build()
}

func validBehavior(b entities.Behavior) bool {
	switch b {
	case entities.BehaviorWander, entities.BehaviorChase, entities.BehaviorFlee,
		entities.BehaviorPatrol, entities.BehaviorIdle:
		return true
	}
	return false
}

func (t EnemyTemplate) components() entities.Components {
	name := t.Name
	if name == "" {
		name = t.Type
	}
	behavior := entities.BehaviorChase
	if t.Behavior != "" {
		behavior = entities.Behavior(t.Behavior)
	}
	enemy := &entities.Enemy{Type: t.Type}
	if t.Effect != nil {
		enemy.InflictsEffect = t.Effect.Kind
		enemy.EffectProbability = t.Effect.Probability
		enemy.EffectMagnitude = t.Effect.Magnitude
		enemy.EffectDuration = t.Effect.Duration
	}
	glyph, _ := utf8.DecodeRuneInString(t.Glyph)

	return entities.Components{
		Name:           name,
		Health:         &entities.Health{Current: t.Health, Maximum: t.Health},
		Combat:         &entities.Combat{Attack: t.Attack, Defense: t.Defense},
		Enemy:          enemy,
		AI:             &entities.AI{Behavior: behavior},
		Renderable:     &entities.Renderable{Glyph: glyph, Color: t.Color},
		BlocksMovement: true,
	}
}

func (t ItemTemplate) components(kind entities.ItemKind) entities.Components {
	glyph, _ := utf8.DecodeRuneInString(t.Glyph)
	return entities.Components{
		Name:       t.Name,
		Item:       &entities.Item{Name: t.Name, Kind: kind, Value: t.Value},
		Renderable: &entities.Renderable{Glyph: glyph, Color: t.Color},
	}
}
