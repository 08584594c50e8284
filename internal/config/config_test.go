package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USER_MINIMUM_AGE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.MinimumAge != DefaultMinimumAge {
		t.Errorf("expected default minimum age %d, got %d", DefaultMinimumAge, cfg.MinimumAge)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("USER_MINIMUM_AGE", "21")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.MinimumAge != 21 {
		t.Errorf("expected minimum age 21, got %d", cfg.MinimumAge)
	}
}

func TestLoadRejectsInvalidMinimumAge(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5"} {
		t.Setenv("USER_MINIMUM_AGE", raw)
		if _, err := Load(); err == nil {
			t.Errorf("expected error for USER_MINIMUM_AGE=%q", raw)
		}
	}
}
