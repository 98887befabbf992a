package config

import (
	"os"
	"testing"
)

func TestGetEnvHelpers(t *testing.T) {
	os.Setenv("TEST_STR", "value")
	os.Setenv("TEST_INT", "123")
	os.Setenv("TEST_BOOL_TRUE", "true")
	os.Setenv("TEST_BOOL_FALSE", "false")
	os.Setenv("TEST_MAP", "helsinki:fi, berlin:de")

	if v := getEnv("TEST_STR", ""); v != "value" {
		t.Fatalf("expected value, got %s", v)
	}
	if v := getEnvAsInt("TEST_INT", 0); v != 123 {
		t.Fatalf("expected 123, got %d", v)
	}
	if !getEnvAsBool("TEST_BOOL_TRUE", false) {
		t.Fatalf("expected true")
	}
	if getEnvAsBool("TEST_BOOL_FALSE", true) {
		t.Fatalf("expected false")
	}

	m := getEnvAsMap("TEST_MAP", nil)
	if m["helsinki"] != "fi" || m["berlin"] != "de" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestGetEnvAsMap_Defaults(t *testing.T) {
	_ = os.Unsetenv("TEST_MAP_MISSING")
	def := map[string]string{"tokyo": "jp"}
	m := getEnvAsMap("TEST_MAP_MISSING", def)
	if m["tokyo"] != "jp" {
		t.Fatalf("expected default map, got %v", m)
	}

	os.Setenv("TEST_MAP_BROKEN", "no-separator")
	m = getEnvAsMap("TEST_MAP_BROKEN", def)
	if m["tokyo"] != "jp" {
		t.Fatalf("expected default map for broken value, got %v", m)
	}
}

func TestLoadDefaults(t *testing.T) {
	// ensure no interfering env vars
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("VENUE_API_CITIES")
	cfg := Load()
	if cfg.Server.Port == "" {
		t.Fatalf("expected default server port set")
	}
	if cfg.VenueAPI.TimeoutSeconds != 10 {
		t.Fatalf("expected 10s venue api timeout, got %d", cfg.VenueAPI.TimeoutSeconds)
	}
	if cfg.VenueAPI.CityCountries["helsinki"] != "fi" {
		t.Fatalf("expected default city mapping")
	}
	if cfg.Pricing.DistanceMethod != "planar" {
		t.Fatalf("expected planar default, got %s", cfg.Pricing.DistanceMethod)
	}
	if cfg.Kafka.Topics.Quotes != "quotes" {
		t.Fatalf("expected quotes topic default")
	}
}

func TestBaseURLFor(t *testing.T) {
	cfg := &VenueAPIConfig{
		DefaultBaseURL:  "https://default.example.com",
		CountryBaseURLs: map[string]string{"fi": "https://fi.example.com"},
	}
	if got := cfg.BaseURLFor("fi"); got != "https://fi.example.com" {
		t.Fatalf("expected country override, got %s", got)
	}
	if got := cfg.BaseURLFor("de"); got != "https://default.example.com" {
		t.Fatalf("expected default url, got %s", got)
	}
}
