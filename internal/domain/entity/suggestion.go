// Package entity defines the core business entities for the domain layer.
package entity

// GiftScenario selects the brainstorming angle for AI gift suggestions.
type GiftScenario string

const (
	ScenarioGeneral    GiftScenario = "general"
	ScenarioBudget     GiftScenario = "budget"
	ScenarioExperience GiftScenario = "experience"
	ScenarioLastMinute GiftScenario = "last_minute"
	ScenarioDIY        GiftScenario = "diy"
	ScenarioGroup      GiftScenario = "group"
	ScenarioMinimal    GiftScenario = "minimal"
	ScenarioLuxury     GiftScenario = "luxury"
)

// IsValid reports whether the scenario is one of the supported kinds.
func (s GiftScenario) IsValid() bool {
	switch s {
	case ScenarioGeneral, ScenarioBudget, ScenarioExperience, ScenarioLastMinute,
		ScenarioDIY, ScenarioGroup, ScenarioMinimal, ScenarioLuxury:
		return true
	}
	return false
}

// ScenarioInfo describes a brainstorming scenario for display.
type ScenarioInfo struct {
	Value       GiftScenario
	Label       string
	Description string
}

// AvailableScenarios lists the supported brainstorming scenarios.
func AvailableScenarios() []ScenarioInfo {
	return []ScenarioInfo{
		{ScenarioGeneral, "General Brainstorming", "Standard gift brainstorming with full context"},
		{ScenarioBudget, "Budget-Conscious", "Thoughtful gifts on a tight budget"},
		{ScenarioLastMinute, "Last-Minute", "Quick gifts available now"},
		{ScenarioDIY, "DIY/Personalized", "Gifts you can create yourself"},
		{ScenarioLuxury, "Luxury/High-End", "Premium, exceptional quality gifts"},
		{ScenarioExperience, "Experience vs Physical", "Compare experience and physical gift options"},
		{ScenarioGroup, "Group Gift Addition", "Complement a group gift"},
		{ScenarioMinimal, "Minimal Information", "Safe bets when you don't know them well"},
	}
}

// SuggestedGift is a single AI-generated gift idea.
type SuggestedGift struct {
	Title       string
	Description string
	Rationale   string
	PriceRange  string
}
