package migration

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"quote-engine/internal/model"
)

// CreateRollback deep-copies a quote's pre-migration state into a one-shot
// snapshot. The copy shares no references with the live quote, which the
// caller will mutate immediately after. Snapshots carry no expiry here;
// their storage lifetime is the caller's concern.
func CreateRollback(original model.QuoteData, originalScheme string) model.RollbackSnapshot {
	return model.RollbackSnapshot{
		SnapshotID:        uuid.New().String(),
		RollbackAvailable: true,
		OriginalScheme:    originalScheme,
		Timestamp:         time.Now().UTC(),
		Data:              cloneQuote(original),
	}
}

// Rollback restores the snapshot's embedded data and scheme verbatim with a
// fresh restoration timestamp. Restoration is all-or-nothing; there is no
// field-level rollback.
func Rollback(snapshot model.RollbackSnapshot) (model.RollbackResult, error) {
	if !snapshot.RollbackAvailable {
		return model.RollbackResult{}, model.ErrNoRollbackAvailable
	}
	return model.RollbackResult{
		Data:       snapshot.Data,
		Scheme:     snapshot.OriginalScheme,
		RestoredAt: time.Now().UTC(),
	}, nil
}

// cloneQuote makes a structural deep copy through JSON. QuoteData is plain
// data and always round-trips.
func cloneQuote(q model.QuoteData) model.QuoteData {
	raw, _ := json.Marshal(q)
	var out model.QuoteData
	_ = json.Unmarshal(raw, &out)
	return out
}
