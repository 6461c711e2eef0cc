package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadRunConfig(t *testing.T) {
	path := writeTemp(t, "plan.json", `{"src":["nyc","sfo"],"dst":[" lon ","TYO"],"bcThreshold":360}`)

	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(cfg.Src, []string{"NYC", "SFO"}) {
		t.Errorf("Expected normalized src codes, got %v", cfg.Src)
	}

	if !reflect.DeepEqual(cfg.Dst, []string{"LON", "TYO"}) {
		t.Errorf("Expected normalized dst codes, got %v", cfg.Dst)
	}

	if cfg.BCThreshold != 360 {
		t.Errorf("Expected bcThreshold 360, got %d", cfg.BCThreshold)
	}
}

func TestLoadRunConfig_MalformedJSON(t *testing.T) {
	path := writeTemp(t, "plan.json", `{"src":["NYC"`)

	if _, err := LoadRunConfig(path); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestLoadRunConfig_MissingFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"NoSrc", `{"dst":["LON"],"bcThreshold":360}`},
		{"EmptySrc", `{"src":[],"dst":["LON"],"bcThreshold":360}`},
		{"NoDst", `{"src":["NYC"],"bcThreshold":360}`},
		{"BlankCode", `{"src":["NYC",""],"dst":["LON"],"bcThreshold":360}`},
		{"NegativeThreshold", `{"src":["NYC"],"dst":["LON"],"bcThreshold":-1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, "plan.json", tc.content)
			if _, err := LoadRunConfig(path); err == nil {
				t.Errorf("Expected validation error for %s", tc.content)
			}
		})
	}
}

func TestLoadRunConfig_MissingFile(t *testing.T) {
	if _, err := LoadRunConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadAliases_MergeOverridesBuiltIns(t *testing.T) {
	path := writeTemp(t, "aliases.yaml", "NYC: [jfk, ewr]\nBER: [BER, SXF]\n")

	overrides, err := LoadAliases(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	merged := MergeAliases(overrides)

	// Override replaces the built-in NYC entry
	if !reflect.DeepEqual(merged["NYC"], []string{"JFK", "EWR"}) {
		t.Errorf("Expected override to win for NYC, got %v", merged["NYC"])
	}

	// New entries extend the table
	if !reflect.DeepEqual(merged["BER"], []string{"BER", "SXF"}) {
		t.Errorf("Expected BER entry, got %v", merged["BER"])
	}

	// Untouched built-ins survive
	if !reflect.DeepEqual(merged["LON"], []string{"LHR", "LGW", "LCY", "STN", "LTN"}) {
		t.Errorf("Expected built-in LON entry, got %v", merged["LON"])
	}
}

func TestLoadAliases_EmptyEntry(t *testing.T) {
	path := writeTemp(t, "aliases.yaml", "NYC: []\n")

	if _, err := LoadAliases(path); err == nil {
		t.Error("Expected error for metro with no airports")
	}
}

func TestLoadServerConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("REACHBURO_API_KEYS", "")

	cfg := LoadServerConfig()

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("Expected default env development, got %s", cfg.AppEnv)
	}

	if len(cfg.APIKeys) != 0 {
		t.Errorf("Expected no API keys, got %v", cfg.APIKeys)
	}
}

func TestLoadServerConfig_APIKeys(t *testing.T) {
	t.Setenv("REACHBURO_API_KEYS", "alpha, beta ,,gamma")

	cfg := LoadServerConfig()

	if !reflect.DeepEqual(cfg.APIKeys, []string{"alpha", "beta", "gamma"}) {
		t.Errorf("Expected three keys, got %v", cfg.APIKeys)
	}
}
