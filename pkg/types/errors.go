package types

import (
	"errors"
	"fmt"
)

// Store and engine errors. Callers match these with errors.Is; the
// structured error types below carry payloads and are matched with errors.As.
var (
	ErrNotFound  = errors.New("item not found")
	ErrInvalidID = errors.New("invalid item ID")

	ErrValidation    = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidType   = errors.New("invalid item type")

	ErrCycle        = errors.New("reparent would create a cycle")
	ErrCrossProject = errors.New("parent belongs to a different project")
	ErrHasChildren  = errors.New("item has children and no delete policy was given")

	ErrInvalidDeletePolicy = errors.New("invalid delete policy")
	ErrInvalidColumn       = errors.New("column cannot carry a WIP limit")
	ErrInvalidLimit        = errors.New("WIP limit must be positive")
	ErrInvalidPolicy       = errors.New("invalid WIP policy")
)

// ConflictError reports an optimistic-concurrency failure: the patch was
// based on a version that is no longer current. The caller should refetch
// and retry.
type ConflictError struct {
	ItemID  string
	Base    int // version the patch was based on
	Current int // version found in the store
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("item %s: stale version %d (current %d)", e.ItemID, e.Base, e.Current)
}

// IllegalTransitionError reports a status move that is not a legal workflow
// edge.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition %s -> %s", e.From, e.To)
}

// WIPExceededError reports a denied admission into a capacity-constrained
// column. Load is the current weight of non-paused items in the column,
// Weight the weight the denied item would have added. This is an expected
// business outcome, not a system fault.
type WIPExceededError struct {
	ProjectID string
	Column    Status
	Load      float64
	Weight    float64
	Limit     int
}

func (e *WIPExceededError) Error() string {
	return fmt.Sprintf("WIP limit exceeded on %s/%s: load %g + %g > limit %d",
		e.ProjectID, e.Column, e.Load, e.Weight, e.Limit)
}
