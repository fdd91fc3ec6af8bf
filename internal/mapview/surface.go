package mapview

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"worldmark/internal/domain"
	"worldmark/internal/selection"
)

// Region fill colors. Color is a pure function of status; there is no
// transition or animation state.
const (
	ColorVisited = "#4caf50"
	ColorPlan    = "#ffa726"
	ColorDefault = "#d6d6da"
)

// ErrUnknownRegion is returned when a prompt targets a country that is
// not in the map dataset.
var ErrUnknownRegion = errors.New("unknown region")

// ErrStalePrompt is returned when a choice or dismissal references a
// prompt that is no longer the user's current one.
var ErrStalePrompt = errors.New("prompt is no longer open")

// FillColor maps a status to a region fill color.
func FillColor(status domain.Status, ok bool) string {
	if !ok {
		return ColorDefault
	}
	switch status {
	case domain.StatusVisited:
		return ColorVisited
	case domain.StatusPlan:
		return ColorPlan
	default:
		return ColorDefault
	}
}

// RegionView is a region plus its current rendering state.
type RegionView struct {
	Region
	Status string `json:"status,omitempty"`
	Fill   string `json:"fill"`
}

// Prompt is the transient three-choice element anchored at a click.
type Prompt struct {
	ID      string   `json:"id"`
	Country string   `json:"country"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
	Choices []string `json:"choices"`
}

// Surface owns the per-user prompt state machine and derives region
// rendering state from the selection store. At most one prompt is open
// per user; opening another closes the previous one first.
type Surface struct {
	selections *selection.Store

	mu      sync.Mutex
	prompts map[string]*Prompt
}

// NewSurface creates a map surface over the given selection store.
func NewSurface(selections *selection.Store) *Surface {
	return &Surface{
		selections: selections,
		prompts:    make(map[string]*Prompt),
	}
}

// Regions returns every region with its fill color for the user's
// current selections.
func (s *Surface) Regions(ctx context.Context, userID string) ([]RegionView, error) {
	list, err := s.selections.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	all := AllRegions()
	views := make([]RegionView, 0, len(all))
	for _, region := range all {
		status, ok := list.StatusOf(region.Name)
		view := RegionView{Region: region, Fill: FillColor(status, ok)}
		if ok {
			view.Status = string(status)
		}
		views = append(views, view)
	}
	return views, nil
}

// OpenPrompt opens the choice prompt for a clicked region, replacing any
// prompt the user already has open.
func (s *Surface) OpenPrompt(userID, country string, x, y float64) (*Prompt, error) {
	if _, ok := LookupRegion(country); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, country)
	}

	prompt := &Prompt{
		ID:      uuid.NewString(),
		Country: country,
		X:       x,
		Y:       y,
		Choices: []string{string(domain.StatusVisited), string(domain.StatusPlan), string(domain.StatusReset)},
	}

	s.mu.Lock()
	s.prompts[userID] = prompt
	s.mu.Unlock()

	return prompt, nil
}

// Choose applies a choice on the user's current prompt, closes it, and
// returns the updated selection list. A choice against a superseded or
// dismissed prompt is rejected without touching state.
func (s *Surface) Choose(ctx context.Context, userID, promptID string, status domain.Status) (domain.SelectionList, error) {
	// Validate before consuming the prompt; a bad choice leaves it open.
	if status != domain.StatusReset && !status.Storable() {
		return nil, fmt.Errorf("%w: %q", selection.ErrInvalidStatus, status)
	}

	s.mu.Lock()
	prompt, ok := s.prompts[userID]
	if !ok || prompt.ID != promptID {
		s.mu.Unlock()
		return nil, ErrStalePrompt
	}
	delete(s.prompts, userID)
	s.mu.Unlock()

	return s.selections.Upsert(ctx, userID, prompt.Country, status)
}

// Dismiss closes the user's current prompt without mutating any state.
// Dismissing a prompt that is already gone is not an error.
func (s *Surface) Dismiss(userID, promptID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prompt, ok := s.prompts[userID]; ok && prompt.ID == promptID {
		delete(s.prompts, userID)
	}
}

// CloseUser discards the user's open prompt, if any. Called when an
// identity is retired so abandoned prompts do not accumulate.
func (s *Surface) CloseUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.prompts, userID)
}

// OpenPromptFor returns the user's currently open prompt, if any.
func (s *Surface) OpenPromptFor(userID string) (*Prompt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prompt, ok := s.prompts[userID]
	return prompt, ok
}
