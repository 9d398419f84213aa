// Package config loads the dungeon settings from a TOML file with
// DUNGEON_* environment overrides.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-dungeon/internal/difficulty"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/mapgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "DUNGEON_"

type Config struct {
	Dungeon    DungeonConfig    `toml:"dungeon"`
	Rooms      RoomsConfig      `toml:"rooms" envPrefix:"ROOMS_"`
	Cave       CaveConfig       `toml:"cave" envPrefix:"CAVE_"`
	Difficulty DifficultyConfig `toml:"difficulty" envPrefix:"DIFFICULTY_"`
	Population PopulationConfig `toml:"population" envPrefix:"POPULATION_"`
	Redis      RedisConfig      `toml:"redis" envPrefix:"REDIS_"`
	Logging    LoggingConfig    `toml:"logging" envPrefix:"LOG_"`
}

type DungeonConfig struct {
	Width         int    `toml:"width" env:"WIDTH"`
	Height        int    `toml:"height" env:"HEIGHT"`
	Algorithm     string `toml:"algorithm" env:"ALGORITHM"` // rooms, cave or simple
	VictoryDepth  int    `toml:"victory_depth" env:"VICTORY_DEPTH"`
	Endless       bool   `toml:"endless" env:"ENDLESS"`
	CacheCapacity int    `toml:"cache_capacity" env:"CACHE_CAPACITY"`
	FOVRadius     int    `toml:"fov_radius" env:"FOV_RADIUS"`
	Seed          uint64 `toml:"seed" env:"SEED"` // 0 picks a seed from the clock
	PlayerName    string `toml:"player_name" env:"PLAYER_NAME"`
}

type RoomsConfig struct {
	MinSize     int `toml:"min_size" env:"MIN_SIZE"`
	MaxSize     int `toml:"max_size" env:"MAX_SIZE"`
	MaxRooms    int `toml:"max_rooms" env:"MAX"`
	MinRooms    int `toml:"min_rooms" env:"MIN"`
	MaxAttempts int `toml:"max_attempts" env:"MAX_ATTEMPTS"`
}

type CaveConfig struct {
	Iterations      int     `toml:"iterations" env:"ITERATIONS"`
	WallProbability float64 `toml:"wall_probability" env:"WALL_PROBABILITY"`
}

type DifficultyConfig struct {
	ScalingBase       float64 `toml:"scaling_base" env:"SCALING_BASE"`
	MaxLevel          int     `toml:"max_level" env:"MAX_LEVEL"`
	LootBaseRate      int     `toml:"loot_base_rate" env:"LOOT_BASE_RATE"`
	LootPerLevel      int     `toml:"loot_per_level" env:"LOOT_PER_LEVEL"`
	LootMaxRate       int     `toml:"loot_max_rate" env:"LOOT_MAX_RATE"`
	EquipmentBaseRate int     `toml:"equipment_base_rate" env:"EQUIPMENT_BASE_RATE"`
	EquipmentPerLevel int     `toml:"equipment_per_level" env:"EQUIPMENT_PER_LEVEL"`
	EquipmentMaxRate  int     `toml:"equipment_max_rate" env:"EQUIPMENT_MAX_RATE"`
	FeetPerLevel      int     `toml:"feet_per_level" env:"FEET_PER_LEVEL"`
}

type PopulationConfig struct {
	EnemiesPerLevel int    `toml:"enemies_per_level" env:"ENEMIES"`
	LootPiles       int    `toml:"loot_piles" env:"LOOT_PILES"`
	BestiaryPath    string `toml:"bestiary_path" env:"BESTIARY"` // empty uses the built-in table
}

type RedisConfig struct {
	Addr            string        `toml:"addr" env:"ADDR"` // empty keeps progress in memory
	Password        string        `toml:"password" env:"PASSWORD"`
	DB              int           `toml:"db" env:"DB"`
	PoolSize        int           `toml:"pool_size" env:"POOL_SIZE"`
	ConnMaxIdleTime time.Duration `toml:"conn_max_idle_time" env:"CONN_MAX_IDLE_TIME"`
	UseTLS          bool          `toml:"use_tls" env:"USE_TLS"`
}

type LoggingConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"` // "json" or "console"
}

// Load builds the configuration from defaults, the TOML file at path when
// path is not empty, and the environment, in that order
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "failed to read config "+path)
		}
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
		}
		for _, key := range md.Undecoded() {
			slog.Warn("Unknown config key", "path", path, "key", key.String())
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Dungeon: DungeonConfig{
			Width:         80,
			Height:        50,
			Algorithm:     string(mapgen.AlgorithmRooms),
			VictoryDepth:  20,
			CacheCapacity: 10,
			FOVRadius:     8,
			PlayerName:    "player",
		},
		Rooms: RoomsConfig{
			MinSize:     mapgen.DefaultMinRoomSize,
			MaxSize:     mapgen.DefaultMaxRoomSize,
			MaxRooms:    mapgen.DefaultMaxRooms,
			MinRooms:    mapgen.DefaultMinRooms,
			MaxAttempts: mapgen.DefaultMaxAttempts,
		},
		Cave: CaveConfig{
			Iterations:      mapgen.DefaultCaveIterations,
			WallProbability: mapgen.DefaultWallProbability,
		},
		Difficulty: DifficultyConfig{
			ScalingBase:       difficulty.DefaultScalingBase,
			MaxLevel:          difficulty.DefaultMaxLevel,
			LootBaseRate:      difficulty.DefaultLootBaseRate,
			LootPerLevel:      difficulty.DefaultLootPerLevel,
			LootMaxRate:       difficulty.DefaultLootMaxRate,
			EquipmentBaseRate: difficulty.DefaultEquipmentBaseRate,
			EquipmentPerLevel: difficulty.DefaultEquipmentPerLevel,
			EquipmentMaxRate:  difficulty.DefaultEquipmentMaxRate,
			FeetPerLevel:      difficulty.DefaultFeetPerLevel,
		},
		Population: PopulationConfig{
			EnemiesPerLevel: 10,
			LootPiles:       5,
		},
		Redis: RedisConfig{
			PoolSize:        10,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the settings the libraries cannot check on their own
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("dungeon.width", c.Dungeon.Width, 10, 500, vb)
	errors.ValidateRange("dungeon.height", c.Dungeon.Height, 10, 500, vb)
	errors.ValidateEnum("dungeon.algorithm", c.Dungeon.Algorithm, mapgen.Algorithms(), vb)
	if c.Dungeon.VictoryDepth < 2 {
		vb.InvalidField("dungeon.victory_depth", "must be at least 2")
	}
	errors.ValidateRange("dungeon.cache_capacity", c.Dungeon.CacheCapacity, 1, 64, vb)
	errors.ValidateRange("dungeon.fov_radius", c.Dungeon.FOVRadius, 1, 100, vb)
	errors.ValidateRequired("dungeon.player_name", c.Dungeon.PlayerName, vb)

	errors.ValidateFloatRange("cave.wall_probability", c.Cave.WallProbability, 0, 1, vb)
	if c.Population.EnemiesPerLevel < 0 {
		vb.InvalidField("population.enemies_per_level", "must not be negative")
	}
	if c.Population.LootPiles < 0 {
		vb.InvalidField("population.loot_piles", "must not be negative")
	}
	errors.ValidateEnum("logging.format", c.Logging.Format, []string{"console", "json"}, vb)

	return vb.Build()
}

// MapgenConfig converts the generator settings
func (c *Config) MapgenConfig(r dice.Roller) *mapgen.Config {
	return &mapgen.Config{
		Roller:          r,
		MinRoomSize:     c.Rooms.MinSize,
		MaxRoomSize:     c.Rooms.MaxSize,
		MaxRooms:        c.Rooms.MaxRooms,
		MinRooms:        c.Rooms.MinRooms,
		MaxAttempts:     c.Rooms.MaxAttempts,
		CaveIterations:  c.Cave.Iterations,
		WallProbability: c.Cave.WallProbability,
	}
}

// ScalerConfig converts the difficulty curve settings
func (c *Config) ScalerConfig() *difficulty.Config {
	d := c.Difficulty
	return &difficulty.Config{
		ScalingBase:       d.ScalingBase,
		MaxLevel:          d.MaxLevel,
		LootBaseRate:      d.LootBaseRate,
		LootPerLevel:      d.LootPerLevel,
		LootMaxRate:       d.LootMaxRate,
		EquipmentBaseRate: d.EquipmentBaseRate,
		EquipmentPerLevel: d.EquipmentPerLevel,
		EquipmentMaxRate:  d.EquipmentMaxRate,
		FeetPerLevel:      d.FeetPerLevel,
	}
}

// RedisOptions converts the Redis client settings
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Password:        c.Redis.Password,
		DB:              c.Redis.DB,
		PoolSize:        c.Redis.PoolSize,
		ConnMaxIdleTime: c.Redis.ConnMaxIdleTime,
		UseTLS:          c.Redis.UseTLS,
	}
}
