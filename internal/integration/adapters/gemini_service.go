// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/domain/entity"
)

// tokenCostPer1K approximates the blended per-1K-token price of the
// configured model, used only for the cost estimate shown to the user.
const tokenCostPer1K = 0.001

// GeminiService implements the SuggestionService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
	timeout   time.Duration
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string, timeout time.Duration) *GeminiService {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Brainstorm generates gift suggestions for the request.
func (s *GeminiService) Brainstorm(ctx context.Context, request *adapter.BrainstormRequest) (*adapter.BrainstormResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	ideas, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	result := &adapter.BrainstormResult{
		Ideas: ideas,
	}
	if resp.UsageMetadata != nil {
		result.TokensUsed = int(resp.UsageMetadata.TotalTokenCount)
		result.CostEstimate = fmt.Sprintf("$%.4f", float64(result.TokensUsed)/1000*tokenCostPer1K)
	}

	return result, nil
}

// systemContext frames every brainstorming prompt.
const systemContext = `You are a thoughtful gift advisor helping someone find meaningful gifts.
Your suggestions should be:
- Specific and actionable (not generic)
- Thoughtfully matched to the person's interests and context
- Practical and actually available for purchase or creation
- Include clear reasoning for why each gift fits

Respond with a JSON array of suggestions. Each suggestion must have:
{
  "title": "short gift title",
  "description": "one sentence description",
  "why_it_fits": "specific reasoning about THIS person",
  "price_range": "estimated cost"
}

Return only the JSON array, no additional text.
`

// buildPrompt creates the scenario-specific prompt for Gemini.
func (s *GeminiService) buildPrompt(request *adapter.BrainstormRequest) string {
	get := func(key, fallback string) string {
		if value, ok := request.Context[key]; ok && value != "" {
			return value
		}
		return fallback
	}

	relationship := get("relationship", "someone special")
	budget := get("budget", "no specific budget")
	interests := get("interests", "Not specified")

	var sb strings.Builder
	sb.WriteString(systemContext)
	sb.WriteString("\n")

	switch request.Scenario {
	case entity.ScenarioBudget:
		fmt.Fprintf(&sb, "Generate %d budget-conscious but thoughtful gift ideas for %s, who is a %s.\n\n", request.NumIdeas, request.GifteeName, relationship)
		fmt.Fprintf(&sb, "Context:\n- Budget: %s\n- What matters most to them: %s\n- Interests: %s\n\n",
			budget, get("values", "Not specified"), interests)
		sb.WriteString("Focus on creative, meaningful gifts that maximize thoughtfulness over cost.")

	case entity.ScenarioLastMinute:
		fmt.Fprintf(&sb, "Generate %d last-minute gift ideas for %s, who is a %s.\n\n", request.NumIdeas, request.GifteeName, relationship)
		fmt.Fprintf(&sb, "Context:\n- Time available: %s days\n- Budget: %s\n- Interests: %s\n- Can shop online or in-person: %s\n\n",
			get("days_until_event", "3-5"), budget, interests, get("shopping_method", "both"))
		sb.WriteString("Focus on gifts that can be obtained quickly but still feel thoughtful.")

	case entity.ScenarioDIY:
		fmt.Fprintf(&sb, "Generate %d DIY/personalized gift ideas for %s, who is a %s.\n\n", request.NumIdeas, request.GifteeName, relationship)
		fmt.Fprintf(&sb, "Context:\n- Your skills: %s\n- Time available: %s\n- Budget for supplies: %s\n- Their interests: %s\n\n",
			get("your_skills", "Basic crafting"), get("time_available", "A few hours"), budget, interests)
		sb.WriteString("Focus on gifts you can create or personalize yourself.")

	case entity.ScenarioLuxury:
		fmt.Fprintf(&sb, "Generate %d luxury/high-end gift ideas for %s, who is a %s.\n\n", request.NumIdeas, request.GifteeName, relationship)
		fmt.Fprintf(&sb, "Context:\n- Budget: %s\n- Their values: %s\n- Interests: %s\n- Priority: %s\n\n",
			budget, get("values", "Quality and craftsmanship"), interests, get("priority", "Quality over quantity"))
		sb.WriteString("Focus on exceptional quality, experiences, or items they wouldn't buy themselves.")

	case entity.ScenarioExperience:
		fmt.Fprintf(&sb, "Generate %d gift ideas for %s, including both experience and physical options.\n\n", request.NumIdeas, request.GifteeName)
		fmt.Fprintf(&sb, "Context:\n- Budget: %s\n- Energy level preference: %s\n- Interests: %s\n- Logistics: %s\n\n",
			budget, get("energy_level", "Mixed"), interests, get("logistics", "Flexible"))
		sb.WriteString("Include a mix of experiences and physical gifts so they can compare.")

	case entity.ScenarioGroup:
		fmt.Fprintf(&sb, "Generate %d gift ideas that would complement a group gift for %s, who is a %s.\n\n", request.NumIdeas, request.GifteeName, relationship)
		fmt.Fprintf(&sb, "Context:\n- Main gift from group: %s\n- Your contribution budget: %s\n- Their interests: %s\n\n",
			get("main_gift", "Not specified"), budget, interests)
		sb.WriteString("Focus on gifts that complement or enhance the main gift.")

	case entity.ScenarioMinimal:
		fmt.Fprintf(&sb, "Generate %d thoughtful gift ideas for %s, who is a %s.\n\n", request.NumIdeas, request.GifteeName, relationship)
		fmt.Fprintf(&sb, "I don't know them very well, so suggest safe, universally appreciated gifts that work for a %s.\n\nBudget: %s\n\n", relationship, budget)
		sb.WriteString("Focus on reliable, well-received gifts appropriate for this relationship.")

	default: // general
		fmt.Fprintf(&sb, "Generate %d thoughtful gift ideas for %s, who is a %s.\n\n", request.NumIdeas, request.GifteeName, relationship)
		fmt.Fprintf(&sb, "Context:\n- Budget: %s\n- Interests/hobbies: %s\n- Gift preferences: %s\n- Any additional notes: %s\n\n",
			budget, interests, get("gift_preferences", "Open to suggestions"), get("notes", "None"))
		sb.WriteString("Focus on gifts that show you understand what matters to them.")
	}

	return sb.String()
}

// geminiIdea represents one suggestion in the raw response from Gemini.
type geminiIdea struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	WhyItFits   string `json:"why_it_fits"`
	PriceRange  string `json:"price_range"`
}

// parseResponse parses the Gemini response into suggested gifts.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) ([]*entity.SuggestedGift, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var rawIdeas []geminiIdea
	if err := json.Unmarshal([]byte(textContent), &rawIdeas); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	ideas := make([]*entity.SuggestedGift, 0, len(rawIdeas))
	for _, raw := range rawIdeas {
		if raw.Title == "" {
			continue
		}
		idea := &entity.SuggestedGift{
			Title:       raw.Title,
			Description: raw.Description,
			Rationale:   raw.WhyItFits,
			PriceRange:  raw.PriceRange,
		}
		if idea.Description == "" {
			idea.Description = "See details above"
		}
		if idea.Rationale == "" {
			idea.Rationale = "Matches their interests"
		}
		if idea.PriceRange == "" {
			idea.PriceRange = "Varies"
		}
		ideas = append(ideas, idea)
	}

	return ideas, nil
}
