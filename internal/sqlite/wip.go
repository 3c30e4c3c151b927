package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// GetWIPLimit returns the column's WIP limit. Columns that were never
// configured default to unlimited; the row is created lazily on SetWIPLimit
// and never deleted while items reference the column.
func (s *Store) GetWIPLimit(projectID string, column types.Status) (*types.WIPLimit, error) {
	limit := &types.WIPLimit{ProjectID: projectID, Column: column}
	if err := limit.Validate(); err != nil {
		return nil, err
	}

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var stored sql.NullInt64
	err = db.QueryRow(
		`SELECT item_limit FROM wip_limits WHERE project_id = ? AND column_name = ?`,
		projectID, string(column),
	).Scan(&stored)
	if err == sql.ErrNoRows {
		return limit, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting WIP limit %s/%s: %w", projectID, column, err)
	}
	if stored.Valid {
		v := int(stored.Int64)
		limit.Limit = &v
	}
	return limit, nil
}

// SetWIPLimit creates or updates a column's WIP limit. A nil limit resets
// the column to unlimited.
func (s *Store) SetWIPLimit(limit *types.WIPLimit) error {
	if err := limit.Validate(); err != nil {
		return err
	}

	db, err := s.handle()
	if err != nil {
		return err
	}

	var stored any
	if limit.Limit != nil {
		stored = *limit.Limit
	}
	_, err = db.Exec(
		`INSERT INTO wip_limits (project_id, column_name, item_limit) VALUES (?, ?, ?)
         ON CONFLICT (project_id, column_name) DO UPDATE SET item_limit = excluded.item_limit`,
		limit.ProjectID, string(limit.Column), stored,
	)
	if err != nil {
		return fmt.Errorf("setting WIP limit %s/%s: %w", limit.ProjectID, limit.Column, err)
	}
	return nil
}

// GetWIPPolicy returns the project's weighting policy, defaulting to count.
func (s *Store) GetWIPPolicy(projectID string) (types.WIPPolicy, error) {
	if projectID == "" {
		return "", fmt.Errorf("%w: project_id is required", types.ErrValidation)
	}
	db, err := s.handle()
	if err != nil {
		return "", err
	}

	var raw string
	err = db.QueryRow(`SELECT policy FROM wip_policies WHERE project_id = ?`, projectID).Scan(&raw)
	if err == sql.ErrNoRows {
		return types.WIPPolicyCount, nil
	}
	if err != nil {
		return "", fmt.Errorf("getting WIP policy for %s: %w", projectID, err)
	}
	return types.ParseWIPPolicy(raw)
}

// SetWIPPolicy sets the project's weighting policy.
func (s *Store) SetWIPPolicy(projectID string, policy types.WIPPolicy) error {
	if projectID == "" {
		return fmt.Errorf("%w: project_id is required", types.ErrValidation)
	}
	if _, err := types.ParseWIPPolicy(string(policy)); err != nil {
		return err
	}

	db, err := s.handle()
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT INTO wip_policies (project_id, policy) VALUES (?, ?)
         ON CONFLICT (project_id) DO UPDATE SET policy = excluded.policy`,
		projectID, string(policy),
	)
	if err != nil {
		return fmt.Errorf("setting WIP policy for %s: %w", projectID, err)
	}
	return nil
}
