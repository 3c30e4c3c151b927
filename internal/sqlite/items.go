package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// timeFormat is the text representation for all stored timestamps (UTC).
const timeFormat = time.RFC3339Nano

// itemColumns is the canonical SELECT column list for backlog items.
const itemColumns = `item_id, project_id, parent_id, title, item_type, status, rank,
    reviewer_id, assignee_id, estimate_value, story_point, pause, deadline,
    version, created_at, updated_at`

// rowScanner abstracts *sql.Row and *sql.Rows for hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem hydrates one items row into a BacklogItem.
func scanItem(row rowScanner) (*types.BacklogItem, error) {
	var (
		it                                  types.BacklogItem
		parent, reviewer, assignee, dueDate sql.NullString
		estimate                            sql.NullFloat64
		points                              sql.NullInt64
		pause                               int
		status, createdAt, updatedAt        string
	)

	err := row.Scan(
		&it.ItemID, &it.ProjectID, &parent, &it.Title, &it.Type, &status, &it.Rank,
		&reviewer, &assignee, &estimate, &points, &pause, &dueDate,
		&it.Version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	it.Status = types.Status(status)
	it.Pause = pause != 0
	if parent.Valid {
		it.ParentID = &parent.String
	}
	if reviewer.Valid {
		it.ReviewerID = &reviewer.String
	}
	if assignee.Valid {
		it.AssigneeID = &assignee.String
	}
	if estimate.Valid {
		it.EstimateValue = &estimate.Float64
	}
	if points.Valid {
		p := int(points.Int64)
		it.StoryPoint = &p
	}
	if dueDate.Valid {
		d, err := time.Parse(timeFormat, dueDate.String)
		if err != nil {
			return nil, fmt.Errorf("parsing deadline: %w", err)
		}
		it.Deadline = &d
	}
	if it.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if it.UpdatedAt, err = time.Parse(timeFormat, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &it, nil
}

// nullStr maps an optional string to its SQL value; empty clears to NULL.
func nullStr(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

// nullTime maps an optional timestamp to its SQL value; zero clears to NULL.
func nullTime(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.UTC().Format(timeFormat)
}

// CreateItem validates and inserts a new backlog item. The item receives a
// UUID v7 identity, initial status Backlog, version 1, and the rank the
// caller computed for the tail of the Backlog column. Returns the new ID.
func (s *Store) CreateItem(item *types.BacklogItem, rank float64) (string, error) {
	if err := item.Validate(); err != nil {
		return "", err
	}

	db, err := s.handle()
	if err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}

	now := time.Now().UTC()
	item.ItemID = id.String()
	item.Status = types.StatusBacklog
	item.Rank = rank
	item.Version = 1
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Type == "" {
		item.Type = types.TypeTask
	}

	var estimate any
	if item.EstimateValue != nil {
		estimate = *item.EstimateValue
	}
	var points any
	if item.StoryPoint != nil {
		points = *item.StoryPoint
	}

	_, err = db.Exec(
		`INSERT INTO items (`+itemColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ItemID, item.ProjectID, nullStr(item.ParentID), item.Title, item.Type,
		string(item.Status), item.Rank, nullStr(item.ReviewerID), nullStr(item.AssigneeID),
		estimate, points, boolInt(item.Pause), nullTime(item.Deadline),
		item.Version, now.Format(timeFormat), now.Format(timeFormat),
	)
	if err != nil {
		return "", fmt.Errorf("inserting item: %w", err)
	}
	return item.ItemID, nil
}

// GetItem retrieves a backlog item by ID.
func (s *Store) GetItem(id string) (*types.BacklogItem, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`SELECT `+itemColumns+` FROM items WHERE item_id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}
	return item, nil
}

// UpdateItem applies a patch under optimistic concurrency: the patch's base
// version must match the stored version or the update fails with
// ConflictError and nothing is written. Bumps version and updated_at.
func (s *Store) UpdateItem(id string, patch types.ItemPatch) (*types.BacklogItem, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *types.BacklogItem
	err := s.withTx(func(tx *sql.Tx) error {
		row := tx.QueryRow(`SELECT `+itemColumns+` FROM items WHERE item_id = ?`, id)
		current, err := scanItem(row)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("getting item %s: %w", id, err)
		}
		if current.Version != patch.BaseVersion {
			return &types.ConflictError{ItemID: id, Base: patch.BaseVersion, Current: current.Version}
		}

		if patch.Title != nil {
			current.Title = *patch.Title
		}
		if patch.Type != nil {
			current.Type = *patch.Type
		}
		if patch.ReviewerID != nil {
			current.ReviewerID = patch.ReviewerID
			if *patch.ReviewerID == "" {
				current.ReviewerID = nil
			}
		}
		if patch.AssigneeID != nil {
			current.AssigneeID = patch.AssigneeID
			if *patch.AssigneeID == "" {
				current.AssigneeID = nil
			}
		}
		if patch.EstimateValue != nil {
			current.EstimateValue = patch.EstimateValue
		}
		if patch.StoryPoint != nil {
			current.StoryPoint = patch.StoryPoint
		}
		if patch.Deadline != nil {
			current.Deadline = patch.Deadline
			if patch.Deadline.IsZero() {
				current.Deadline = nil
			}
		}
		current.Version++
		current.UpdatedAt = time.Now().UTC()

		var estimate any
		if current.EstimateValue != nil {
			estimate = *current.EstimateValue
		}
		var points any
		if current.StoryPoint != nil {
			points = *current.StoryPoint
		}

		_, err = tx.Exec(
			`UPDATE items SET title = ?, item_type = ?, reviewer_id = ?, assignee_id = ?,
                estimate_value = ?, story_point = ?, deadline = ?, version = ?, updated_at = ?
             WHERE item_id = ?`,
			current.Title, current.Type, nullStr(current.ReviewerID), nullStr(current.AssigneeID),
			estimate, points, nullTime(current.Deadline),
			current.Version, current.UpdatedAt.Format(timeFormat), id,
		)
		if err != nil {
			return fmt.Errorf("updating item %s: %w", id, err)
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetStatusRank moves an item to a new status and rank in one atomic write,
// guarded by the item's version. A version mismatch yields ConflictError.
// Only the engine's transition path calls this; no other code mutates
// status.
func (s *Store) SetStatusRank(id string, baseVersion int, status types.Status, rank float64) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	res, err := db.Exec(
		`UPDATE items SET status = ?, rank = ?, version = version + 1, updated_at = ?
         WHERE item_id = ? AND version = ?`,
		string(status), rank, time.Now().UTC().Format(timeFormat), id, baseVersion,
	)
	if err != nil {
		return fmt.Errorf("moving item %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		current, getErr := s.GetItem(id)
		if getErr != nil {
			return getErr
		}
		return &types.ConflictError{ItemID: id, Base: baseVersion, Current: current.Version}
	}
	return nil
}

// SetPause flips the pause flag. Admission re-checks for unpausing happen
// in the engine before this write.
func (s *Store) SetPause(id string, paused bool) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	res, err := db.Exec(
		`UPDATE items SET pause = ?, version = version + 1, updated_at = ? WHERE item_id = ?`,
		boolInt(paused), time.Now().UTC().Format(timeFormat), id,
	)
	if err != nil {
		return fmt.Errorf("setting pause on item %s: %w", id, err)
	}
	return oneRowOrNotFound(res)
}

// SetParent rewrites an item's hierarchy edge. Cycle and cross-project
// checks happen in the engine before this write.
func (s *Store) SetParent(id string, parentID *string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	res, err := db.Exec(
		`UPDATE items SET parent_id = ?, version = version + 1, updated_at = ? WHERE item_id = ?`,
		nullStr(parentID), time.Now().UTC().Format(timeFormat), id,
	)
	if err != nil {
		return fmt.Errorf("reparenting item %s: %w", id, err)
	}
	return oneRowOrNotFound(res)
}

// DeleteItem removes a childless item.
func (s *Store) DeleteItem(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := s.handle()
	if err != nil {
		return err
	}
	res, err := db.Exec(`DELETE FROM items WHERE item_id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	return oneRowOrNotFound(res)
}

// DeleteItems removes the given items in order inside one transaction.
// Callers pass descendants leaves-first so foreign keys never dangle.
func (s *Store) DeleteItems(ids []string) error {
	return s.withTx(func(tx *sql.Tx) error {
		for _, id := range ids {
			res, err := tx.Exec(`DELETE FROM items WHERE item_id = ?`, id)
			if err != nil {
				return fmt.Errorf("deleting item %s: %w", id, err)
			}
			if err := oneRowOrNotFound(res); err != nil {
				return err
			}
		}
		return nil
	})
}

// DetachAndDelete promotes an item's children to roots and deletes the item
// in one transaction.
func (s *Store) DetachAndDelete(id string) error {
	now := time.Now().UTC().Format(timeFormat)
	return s.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`UPDATE items SET parent_id = NULL, version = version + 1, updated_at = ? WHERE parent_id = ?`,
			now, id,
		)
		if err != nil {
			return fmt.Errorf("detaching children of %s: %w", id, err)
		}
		res, err := tx.Exec(`DELETE FROM items WHERE item_id = ?`, id)
		if err != nil {
			return fmt.Errorf("deleting item %s: %w", id, err)
		}
		return oneRowOrNotFound(res)
	})
}

// ListByProject returns the project's items narrowed by the filter, ordered
// by column then rank.
func (s *Store) ListByProject(projectID string, filter types.ItemFilter) ([]*types.BacklogItem, error) {
	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", types.ErrValidation)
	}
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + itemColumns + ` FROM items WHERE project_id = ?`)
	args := []any{projectID}

	if filter.Status != nil {
		if !filter.Status.Valid() {
			return nil, types.ErrInvalidStatus
		}
		sb.WriteString(` AND status = ?`)
		args = append(args, string(*filter.Status))
	}
	if filter.AssigneeID != nil {
		sb.WriteString(` AND assignee_id = ?`)
		args = append(args, *filter.AssigneeID)
	}
	if filter.Type != nil {
		sb.WriteString(` AND item_type = ?`)
		args = append(args, *filter.Type)
	}
	if filter.ParentID != nil {
		if *filter.ParentID == "" {
			sb.WriteString(` AND parent_id IS NULL`)
		} else {
			sb.WriteString(` AND parent_id = ?`)
			args = append(args, *filter.ParentID)
		}
	}
	sb.WriteString(` ORDER BY status, rank`)
	if filter.Limit > 0 {
		sb.WriteString(` LIMIT ? OFFSET ?`)
		args = append(args, filter.Limit, filter.Offset)
	}

	return s.queryItems(db, sb.String(), args...)
}

// ListColumn returns one column's items ordered by ascending rank.
func (s *Store) ListColumn(projectID string, status types.Status) ([]*types.BacklogItem, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return s.queryItems(db,
		`SELECT `+itemColumns+` FROM items WHERE project_id = ? AND status = ? ORDER BY rank`,
		projectID, string(status),
	)
}

// ListChildren returns an item's direct children.
func (s *Store) ListChildren(parentID string) ([]*types.BacklogItem, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return s.queryItems(db,
		`SELECT `+itemColumns+` FROM items WHERE parent_id = ? ORDER BY status, rank`,
		parentID,
	)
}

// RebalanceColumn rewrites a column's ranks to evenly spaced multiples of
// step, in rank order, inside one transaction. Returns the refreshed
// column.
func (s *Store) RebalanceColumn(projectID string, status types.Status, step float64) ([]*types.BacklogItem, error) {
	var items []*types.BacklogItem
	now := time.Now().UTC().Format(timeFormat)

	err := s.withTx(func(tx *sql.Tx) error {
		rows, err := tx.Query(
			`SELECT `+itemColumns+` FROM items WHERE project_id = ? AND status = ? ORDER BY rank`,
			projectID, string(status),
		)
		if err != nil {
			return fmt.Errorf("reading column: %w", err)
		}
		items, err = collectItems(rows)
		if err != nil {
			return err
		}

		for i, it := range items {
			rank := float64(i+1) * step
			_, err := tx.Exec(
				`UPDATE items SET rank = ?, version = version + 1, updated_at = ? WHERE item_id = ?`,
				rank, now, it.ItemID,
			)
			if err != nil {
				return fmt.Errorf("rebalancing item %s: %w", it.ItemID, err)
			}
			it.Rank = rank
			it.Version++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// queryItems runs a SELECT over itemColumns and collects the rows.
func (s *Store) queryItems(db *sql.DB, query string, args ...any) ([]*types.BacklogItem, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	return collectItems(rows)
}

func collectItems(rows *sql.Rows) ([]*types.BacklogItem, error) {
	defer rows.Close()
	var items []*types.BacklogItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// oneRowOrNotFound maps a zero-row write result to ErrNotFound.
func oneRowOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
