// Package types defines the domain model for the corkboard engine: backlog
// items, the workflow status machine, WIP limits, the board projection, and
// the standard error values shared by the storage and engine layers.
package types
