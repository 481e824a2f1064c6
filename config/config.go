package config

import (
	"io"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment override, e.g. UNO_SEATS.
const EnvPrefix = "uno"

type Config struct {
	Humans               []string `yaml:"humans" envconfig:"humans"`
	Seats                int      `yaml:"seats" envconfig:"seats"`
	Difficulty           string   `yaml:"difficulty" envconfig:"difficulty"`
	Variant              string   `yaml:"variant" envconfig:"variant"`
	TargetScore          int      `yaml:"targetScore" envconfig:"target_score"`
	DetectionProbability float64  `yaml:"detectionProbability" envconfig:"detection_probability"`
	MaxRounds            int      `yaml:"maxRounds" envconfig:"max_rounds"`
	// Seed makes games reproducible. Zero uses crypto randomness.
	Seed      int64     `yaml:"seed" envconfig:"seed"`
	Redis     Redis     `yaml:"redis"`
	Postgres  Postgres  `yaml:"postgres"`
	Spectator Spectator `yaml:"spectator"`
}

// Redis is disabled while Addr is empty.
type Redis struct {
	Addr  string `yaml:"addr" envconfig:"addr"`
	DB    int    `yaml:"db" envconfig:"db"`
	Queue string `yaml:"queue" envconfig:"queue"`
}

type Postgres struct {
	DSN string `yaml:"dsn" envconfig:"dsn"`
}

// Spectator is disabled while Addr is empty.
type Spectator struct {
	Addr string `yaml:"addr" envconfig:"addr"`
}

func DefaultConfig() Config {
	return Config{
		Humans:               []string{"Player"},
		Seats:                consts.DefaultSeats,
		Difficulty:           consts.DifficultyMedium,
		Variant:              string(game.VariantStandard),
		TargetScore:          consts.WinningScore,
		DetectionProbability: consts.DefaultDetectionProbability,
		Redis: Redis{
			Queue: "uno_scores",
		},
	}
}

// Load starts from the defaults, applies the YAML file when it exists and then
// the environment.
func Load(configFile string) (Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		file, err := os.Open(configFile)
		if err != nil && !os.IsNotExist(err) {
			return cfg, err
		}
		if err == nil {
			defer file.Close()
			if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && err != io.EOF {
				return cfg, err
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Seats < consts.MinPlayers || c.Seats > consts.MaxPlayers || len(c.Humans) > c.Seats {
		return consts.ErrorsPlayersInvalid
	}
	if !validDifficulty(c.Difficulty) {
		return consts.ErrorsDifficultyInvalid
	}
	if _, err := game.ParseVariant(c.Variant); err != nil {
		return consts.ErrorsVariantInvalid
	}
	if c.DetectionProbability < 0 || c.DetectionProbability > 1 {
		return consts.ErrorsProbabilityRange
	}
	if c.TargetScore <= 0 || c.MaxRounds < 0 {
		return consts.ErrorsInputInvalid
	}
	return nil
}

func validDifficulty(difficulty string) bool {
	for _, d := range consts.Difficulties {
		if strings.EqualFold(strings.TrimSpace(difficulty), d) {
			return true
		}
	}
	return false
}
