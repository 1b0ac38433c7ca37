package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.EffectiveFillRatioForHeight != DefaultEffectiveFillRatioForHeight {
		t.Errorf("expected height ratio %.2f, got %.2f", DefaultEffectiveFillRatioForHeight, cfg.EffectiveFillRatioForHeight)
	}
	if cfg.NearLimitPercent != DefaultNearLimitPercent {
		t.Errorf("expected near limit %.0f, got %.0f", DefaultNearLimitPercent, cfg.NearLimitPercent)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected default theme=dark, got %s", cfg.Theme)
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil")
	}
}

func TestNormalizeRepairsOutOfRange(t *testing.T) {
	cfg := AppConfig{
		EffectiveFillRatioForHeight: 1.5,
		NearLimitPercent:            -1,
		Theme:                       "neon",
	}
	cfg.Normalize()

	if cfg.EffectiveFillRatioForHeight != DefaultEffectiveFillRatioForHeight {
		t.Errorf("expected height ratio reset, got %.2f", cfg.EffectiveFillRatioForHeight)
	}
	if cfg.NearLimitPercent != DefaultNearLimitPercent {
		t.Errorf("expected near limit reset, got %.2f", cfg.NearLimitPercent)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected theme reset to dark, got %s", cfg.Theme)
	}
	if cfg.ReportTitle == "" {
		t.Error("expected report title default")
	}
	if cfg.RecentProjects == nil {
		t.Error("RecentProjects should not be nil")
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.EffectiveFillRatioForHeight = 0.75
	cfg.Theme = "light"
	cfg.Normalize()

	if cfg.EffectiveFillRatioForHeight != 0.75 {
		t.Errorf("expected 0.75 kept, got %.2f", cfg.EffectiveFillRatioForHeight)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected light kept, got %s", cfg.Theme)
	}
}

func TestAddRecentProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.AddRecentProject("a.json")
	cfg.AddRecentProject("b.json")
	cfg.AddRecentProject("a.json")

	if len(cfg.RecentProjects) != 2 {
		t.Fatalf("expected 2 recent projects, got %d", len(cfg.RecentProjects))
	}
	if cfg.RecentProjects[0] != "a.json" {
		t.Errorf("expected a.json first, got %s", cfg.RecentProjects[0])
	}

	for i := 0; i < 20; i++ {
		cfg.AddRecentProject(string(rune('c'+i)) + ".json")
	}
	if len(cfg.RecentProjects) != maxRecentProjects {
		t.Errorf("expected list capped at %d, got %d", maxRecentProjects, len(cfg.RecentProjects))
	}
}
