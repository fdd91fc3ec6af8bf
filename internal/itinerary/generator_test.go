package itinerary

import (
	"context"
	"strings"
	"testing"

	"worldmark/internal/domain"
)

func TestStubGenerator(t *testing.T) {
	tests := []struct {
		name string
		req  domain.ItineraryRequest
		want string
	}{
		{
			name: "with interests",
			req:  domain.ItineraryRequest{Country: "Japan", Days: 5, Interests: []string{"food", "temples"}},
			want: "Sample itinerary for 5 days in Japan focused on food, temples.",
		},
		{
			name: "no interests",
			req:  domain.ItineraryRequest{Country: "Chile", Days: 10},
			want: "Sample itinerary for 10 days in Chile focused on .",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StubGenerator{}.Generate(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	req := domain.ItineraryRequest{
		Country:     "Japan",
		Days:        5,
		Interests:   []string{"food"},
		ArrivalDate: "2026-10-01",
	}
	prompt := buildPrompt(req)

	for _, want := range []string{"5 days", "Japan", "food", "2026-10-01"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q: %s", want, prompt)
		}
	}
}

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), "", "gemini-2.0-flash", 0); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
