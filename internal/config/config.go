package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rogue-soccer/internal/domain"
	"rogue-soccer/internal/engine"

	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the config dir.
const FileName = "rogue_soccer.cfg.json"

// EnvPrefix prefixes environment overrides: match.seed -> SOCCER_MATCH_SEED.
const EnvPrefix = "SOCCER"

// JournalConfig holds the match journal database settings.
type JournalConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Driver  string `json:"driver" mapstructure:"driver"`
	DSN     string `json:"dsn" mapstructure:"dsn"`
}

// Settings is everything the server binary needs.
type Settings struct {
	LogLevel  string
	LogFormat string
	Port      string
	ReplayDir string

	Match   engine.Config
	Journal JournalConfig
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFormat", "text")

	viper.SetDefault("server.port", "8080")

	viper.SetDefault("match.seed", 0)
	viper.SetDefault("match.fixedStep", 1.0/64)
	viper.SetDefault("match.pathStep", 0.25)
	viper.SetDefault("match.bannerDuration", 1.0)
	viper.SetDefault("match.turnTimeout", 60.0)
	viper.SetDefault("match.humanTeam", "player")
	viper.SetDefault("match.maxTicks", 0)

	stats := domain.DefaultStats()
	viper.SetDefault("stats.ap", stats.AP)
	viper.SetDefault("stats.kickStrength", stats.KickStrength)
	viper.SetDefault("stats.passingSkill", stats.PassingSkill)
	viper.SetDefault("stats.wit", stats.Wit)
	viper.SetDefault("stats.defense", stats.Defense)

	viper.SetDefault("journal.enabled", false)
	viper.SetDefault("journal.driver", "sqlite")
	viper.SetDefault("journal.dsn", "")

	viper.SetDefault("replay.dir", "./replays")
}

// Load reads the JSON config from configDir, applies defaults and
// SOCCER_* environment overrides. A missing file is not an error; a
// malformed one is.
func Load(configDir string) (Settings, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	match, err := matchConfig()
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		LogLevel:  viper.GetString("logLevel"),
		LogFormat: viper.GetString("logFormat"),
		Port:      viper.GetString("server.port"),
		ReplayDir: viper.GetString("replay.dir"),
		Match:     match,
		Journal: JournalConfig{
			Enabled: viper.GetBool("journal.enabled"),
			Driver:  viper.GetString("journal.driver"),
			DSN:     viper.GetString("journal.dsn"),
		},
	}, nil
}

func matchConfig() (engine.Config, error) {
	cfg := engine.Config{
		Seed:           viper.GetInt64("match.seed"),
		FixedStep:      viper.GetFloat64("match.fixedStep"),
		PathStep:       viper.GetFloat64("match.pathStep"),
		BannerDuration: viper.GetFloat64("match.bannerDuration"),
		TurnTimeout:    viper.GetFloat64("match.turnTimeout"),
		MaxTicks:       viper.GetInt("match.maxTicks"),
		Stats: domain.StatDefaults{
			AP:           viper.GetInt("stats.ap"),
			KickStrength: viper.GetFloat64("stats.kickStrength"),
			PassingSkill: viper.GetFloat64("stats.passingSkill"),
			Wit:          viper.GetFloat64("stats.wit"),
			Defense:      viper.GetFloat64("stats.defense"),
		},
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	switch human := strings.ToLower(viper.GetString("match.humanTeam")); human {
	case "none", "":
		cfg.HasHuman = false
	default:
		team, ok := domain.ParseTeam(human)
		if !ok {
			return engine.Config{}, fmt.Errorf("match.humanTeam: unknown team %q", human)
		}
		cfg.HumanTeam, cfg.HasHuman = team, true
	}

	if cfg.FixedStep <= 0 || cfg.PathStep <= 0 {
		return engine.Config{}, fmt.Errorf("match steps must be positive (fixedStep=%v, pathStep=%v)", cfg.FixedStep, cfg.PathStep)
	}
	if cfg.Stats.AP <= 0 {
		return engine.Config{}, fmt.Errorf("stats.ap must be positive, got %d", cfg.Stats.AP)
	}
	return cfg, nil
}
