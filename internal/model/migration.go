package model

import (
	"errors"
	"time"

	"quote-engine/internal/jsonpatch"
)

// ErrNoRollbackAvailable is returned when a rollback is requested on a
// snapshot that was never created or is already marked unavailable.
var ErrNoRollbackAvailable = errors.New("no rollback data available")

// CompatibilityReport is the outcome of judging a scheme change before it is
// performed. IsCompatible goes false only when a structural precondition of
// the target scheme is unmet; Warnings are advisory and never block.
type CompatibilityReport struct {
	IsCompatible bool     `json:"isCompatible"`
	Warnings     []string `json:"warnings"`
	DataLoss     []string `json:"dataLoss"`
	Migrations   []string `json:"migrations"`
}

// MigrationResult is the transformed quote data together with the ordered
// human-readable log of every decision taken, plus machine-readable RFC 6902
// patches describing the change (forward) and its inverse (rollback).
type MigrationResult struct {
	Data          QuoteData      `json:"data"`
	MigrationLog  []string       `json:"migrationLog"`
	ChangePatch   []jsonpatch.Op `json:"changePatch,omitempty"`
	RollbackPatch []jsonpatch.Op `json:"rollbackPatch,omitempty"`
}

// RollbackSnapshot is a deep copy of a quote's pre-migration state, taken once
// per scheme-change attempt and consumed at most once by a restore. The
// snapshot shares no references with the live quote.
type RollbackSnapshot struct {
	SnapshotID        string    `json:"snapshotId"`
	RollbackAvailable bool      `json:"rollbackAvailable"`
	OriginalScheme    string    `json:"originalScheme"`
	Timestamp         time.Time `json:"timestamp"`
	Data              QuoteData `json:"data"`
}

// RollbackResult restores the embedded pre-migration state verbatim.
type RollbackResult struct {
	Data       QuoteData `json:"data"`
	Scheme     string    `json:"scheme"`
	RestoredAt time.Time `json:"restoredAt"`
}
