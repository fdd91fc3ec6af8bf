package itinerary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"worldmark/internal/domain"
)

// GeminiGenerator generates itineraries with the Gemini API. One request
// per call: no retries, no streaming.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

// Generate asks the model for a day-by-day plan and returns it as an
// opaque string.
func (g *GeminiGenerator) Generate(ctx context.Context, req domain.ItineraryRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(buildPrompt(req)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty itinerary")
	}
	return text, nil
}

func buildPrompt(req domain.ItineraryRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a day-by-day travel itinerary for %d days in %s.", req.Days, req.Country)
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, " The traveler is interested in %s.", strings.Join(req.Interests, ", "))
	}
	if req.ArrivalDate != "" {
		fmt.Fprintf(&b, " The trip starts on %s.", req.ArrivalDate)
	}
	b.WriteString(" Keep it practical and concise, one short paragraph per day.")
	return b.String()
}
