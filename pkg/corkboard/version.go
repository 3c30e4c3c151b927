// Package corkboard holds module-level metadata.
package corkboard

const Version = "0.1.0"
