// Package sqlite implements the SQLite storage backend for the corkboard
// engine: durable storage for backlog items, their hierarchy edges, and
// per-column WIP limits.
package sqlite

// Schema DDL. The items table carries the hierarchy edge (parent_id) and
// the board position (status, rank). Lookups the engine performs on every
// operation are covered by the two secondary indexes.
const (
	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    parent_id TEXT REFERENCES items(item_id),
    title TEXT NOT NULL,
    item_type TEXT NOT NULL,
    status TEXT NOT NULL,
    rank REAL NOT NULL,
    reviewer_id TEXT,
    assignee_id TEXT,
    estimate_value REAL,
    story_point INTEGER,
    pause INTEGER NOT NULL DEFAULT 0,
    deadline TEXT,
    version INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createItemsColumnIndex = `CREATE INDEX IF NOT EXISTS idx_items_project_status_rank
    ON items(project_id, status, rank);`

	createItemsParentIndex = `CREATE INDEX IF NOT EXISTS idx_items_project_parent
    ON items(project_id, parent_id);`

	createWIPLimits = `CREATE TABLE IF NOT EXISTS wip_limits (
    project_id TEXT NOT NULL,
    column_name TEXT NOT NULL,
    item_limit INTEGER,
    PRIMARY KEY (project_id, column_name)
);`

	createWIPPolicies = `CREATE TABLE IF NOT EXISTS wip_policies (
    project_id TEXT PRIMARY KEY,
    policy TEXT NOT NULL
);`
)

// schemaStatements lists the DDL in creation order.
var schemaStatements = []string{
	createItems,
	createItemsColumnIndex,
	createItemsParentIndex,
	createWIPLimits,
	createWIPPolicies,
}
