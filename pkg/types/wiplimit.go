package types

import "fmt"

// WIPLimit is a per-project capacity for a single column. A nil Limit means
// unlimited; that is the default for every column until set explicitly.
// Only Todo and Doing can be limited.
type WIPLimit struct {
	ProjectID string `json:"project_id"`
	Column    Status `json:"column"`
	Limit     *int   `json:"limit"`
}

// Validate checks column and limit values.
func (w *WIPLimit) Validate() error {
	if w.ProjectID == "" {
		return fmt.Errorf("%w: project_id is required", ErrValidation)
	}
	if !w.Column.Limited() {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, w.Column)
	}
	if w.Limit != nil && *w.Limit <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

// WIPPolicy selects how items are weighed against a WIP limit.
type WIPPolicy string

const (
	// WIPPolicyCount weighs every item as 1.
	WIPPolicyCount WIPPolicy = "count"
	// WIPPolicyPoints weighs items by story points, falling back to the
	// estimate value, then to 1.
	WIPPolicyPoints WIPPolicy = "points"
)

// ParseWIPPolicy converts a string to a WIPPolicy.
func ParseWIPPolicy(raw string) (WIPPolicy, error) {
	switch WIPPolicy(raw) {
	case WIPPolicyCount, WIPPolicyPoints:
		return WIPPolicy(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, raw)
}
