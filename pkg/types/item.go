package types

import (
	"fmt"
	"time"
)

// Item types. Informational: the type never affects workflow rules.
const (
	TypeEpic  = "epic"
	TypeStory = "story"
	TypeTask  = "task"
)

// validItemTypes is the set of recognized item type values.
var validItemTypes = map[string]bool{
	TypeEpic:  true,
	TypeStory: true,
	TypeTask:  true,
}

// BacklogItem is a unit of trackable work. Items form a forest per project
// through ParentID and occupy exactly one board column through Status.
// Rank orders items within a (project, status) pair.
type BacklogItem struct {
	ItemID        string     `json:"item_id"`
	ProjectID     string     `json:"project_id"`
	ParentID      *string    `json:"parent_id,omitempty"`
	Title         string     `json:"title"`
	Type          string     `json:"type"`
	Status        Status     `json:"status"`
	Rank          float64    `json:"rank"`
	ReviewerID    *string    `json:"reviewer_id,omitempty"`
	AssigneeID    *string    `json:"assignee_id,omitempty"`
	EstimateValue *float64   `json:"estimate_value,omitempty"`
	StoryPoint    *int       `json:"story_point,omitempty"`
	Pause         bool       `json:"pause"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Version       int        `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Validate checks the fields a caller supplies at creation time. The store
// fills ItemID, Status, Rank, Version, and the timestamps itself.
func (i *BacklogItem) Validate() error {
	if i.ProjectID == "" {
		return fmt.Errorf("%w: project_id is required", ErrValidation)
	}
	if i.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if i.Type != "" && !validItemTypes[i.Type] {
		return fmt.Errorf("%w: %q", ErrInvalidType, i.Type)
	}
	if i.Status != "" && i.Status != StatusBacklog {
		return fmt.Errorf("%w: items are created in %s", ErrInvalidStatus, StatusBacklog)
	}
	return nil
}

// Weight returns the item's WIP weight under the given policy. Under the
// points policy an unsized item still weighs 1: it occupies a slot even
// without an estimate.
func (i *BacklogItem) Weight(policy WIPPolicy) float64 {
	if policy != WIPPolicyPoints {
		return 1
	}
	if i.StoryPoint != nil {
		return float64(*i.StoryPoint)
	}
	if i.EstimateValue != nil {
		return *i.EstimateValue
	}
	return 1
}

// ItemPatch carries a partial update for a backlog item. Nil fields are left
// unchanged. BaseVersion must match the stored version or the update fails
// with ConflictError. Status, Rank, ParentID, and Pause are deliberately
// absent: those fields change only through the engine's transition,
// reorder, reparent, and pause operations.
type ItemPatch struct {
	BaseVersion   int
	Title         *string
	Type          *string
	ReviewerID    *string // empty string clears
	AssigneeID    *string // empty string clears
	EstimateValue *float64
	StoryPoint    *int
	Deadline      *time.Time // zero time clears
}

// Validate checks the patch fields.
func (p *ItemPatch) Validate() error {
	if p.BaseVersion <= 0 {
		return fmt.Errorf("%w: base version is required", ErrValidation)
	}
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if p.Type != nil && !validItemTypes[*p.Type] {
		return fmt.Errorf("%w: %q", ErrInvalidType, *p.Type)
	}
	return nil
}

// ItemFilter narrows ListByProject results. Nil fields match everything.
// A non-nil empty ParentID matches root items only. Limit zero means no
// pagination.
type ItemFilter struct {
	Status     *Status
	AssigneeID *string
	Type       *string
	ParentID   *string
	Limit      int
	Offset     int
}

// Delete policies for items with children.
type DeletePolicy string

const (
	// DeletePolicyNone refuses deletion when the item has children.
	DeletePolicyNone DeletePolicy = ""
	// DeleteDetachChildren promotes children to roots before deleting.
	DeleteDetachChildren DeletePolicy = "detach"
	// DeleteCascade removes the whole subtree, leaves first.
	DeleteCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy converts a string to a DeletePolicy.
func ParseDeletePolicy(raw string) (DeletePolicy, error) {
	switch DeletePolicy(raw) {
	case DeletePolicyNone, DeleteDetachChildren, DeleteCascade:
		return DeletePolicy(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDeletePolicy, raw)
}
