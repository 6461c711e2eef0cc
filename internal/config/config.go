package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"infinite-experiment/reachburo/internal/common"
	"infinite-experiment/reachburo/internal/constants"
)

var validate = validator.New()

// RunConfig is the input of one estimate run: the attendee source cities,
// the candidate destination cities, and the duration threshold (minutes)
// above which an attendee is assumed to need a business-class fare.
type RunConfig struct {
	Src         []string `json:"src" validate:"required,min=1,dive,required"`
	Dst         []string `json:"dst" validate:"required,min=1,dive,required"`
	BCThreshold int      `json:"bcThreshold" validate:"gte=0"`
}

// LoadRunConfig reads and validates a JSON run config file. City codes are
// normalized to uppercase on load.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg RunConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	for i, c := range cfg.Src {
		cfg.Src[i] = common.NormalizeCode(c)
	}
	for i, c := range cfg.Dst {
		cfg.Dst[i] = common.NormalizeCode(c)
	}

	return &cfg, nil
}

// LoadAliases reads a YAML file mapping metro codes to constituent airport
// codes, e.g.
//
//	NYC: [JFK, LGA, EWR]
//	BER: [BER]
//
// Entries override or extend the built-in metro table for the run.
func LoadAliases(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read aliases %s: %w", path, err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse aliases %s: %w", path, err)
	}

	aliases := make(map[string][]string, len(raw))
	for metro, airports := range raw {
		if len(airports) == 0 {
			return nil, fmt.Errorf("aliases %s: metro %q has no airports", path, metro)
		}
		normalized := make([]string, len(airports))
		for i, a := range airports {
			normalized[i] = common.NormalizeCode(a)
		}
		aliases[common.NormalizeCode(metro)] = normalized
	}

	return aliases, nil
}

// MergeAliases layers per-run overrides on top of the built-in metro table.
// The built-in table is never mutated.
func MergeAliases(overrides map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(constants.MetroAreas)+len(overrides))
	for metro, airports := range constants.MetroAreas {
		merged[metro] = airports
	}
	for metro, airports := range overrides {
		merged[metro] = airports
	}
	return merged
}

// ServerConfig is the serving-mode configuration, resolved from the
// environment.
type ServerConfig struct {
	Port    string
	AppEnv  string
	APIKeys []string
}

// LoadServerConfig reads serving-mode settings from the environment.
// REACHBURO_API_KEYS is a comma-separated list of accepted X-API-Key
// values; when empty the estimates API is open.
func LoadServerConfig() ServerConfig {
	cfg := ServerConfig{
		Port:   os.Getenv("PORT"),
		AppEnv: os.Getenv("APP_ENV"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}

	for _, key := range strings.Split(os.Getenv("REACHBURO_API_KEYS"), ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.APIKeys = append(cfg.APIKeys, key)
		}
	}

	return cfg
}
