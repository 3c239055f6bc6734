// Package entity defines the core business entities for the domain layer.
package entity

import "testing"

func TestGiftScenario_IsValid(t *testing.T) {
	valid := []GiftScenario{
		ScenarioGeneral, ScenarioBudget, ScenarioExperience, ScenarioLastMinute,
		ScenarioDIY, ScenarioGroup, ScenarioMinimal, ScenarioLuxury,
	}
	for _, scenario := range valid {
		if !scenario.IsValid() {
			t.Errorf("expected scenario %s to be valid", scenario)
		}
	}

	invalid := []GiftScenario{"", "romantic", "GENERAL", "last-minute"}
	for _, scenario := range invalid {
		if scenario.IsValid() {
			t.Errorf("expected scenario %q to be invalid", scenario)
		}
	}
}

func TestAvailableScenarios(t *testing.T) {
	scenarios := AvailableScenarios()
	if len(scenarios) != 8 {
		t.Fatalf("expected 8 scenarios, got %d", len(scenarios))
	}

	seen := make(map[GiftScenario]bool)
	for _, info := range scenarios {
		if !info.Value.IsValid() {
			t.Errorf("listed scenario %s is not valid", info.Value)
		}
		if info.Label == "" || info.Description == "" {
			t.Errorf("scenario %s missing label or description", info.Value)
		}
		if seen[info.Value] {
			t.Errorf("scenario %s listed twice", info.Value)
		}
		seen[info.Value] = true
	}
}
