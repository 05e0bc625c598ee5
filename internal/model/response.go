package model

// CalculationMetadata describes one engine invocation as surfaced in every
// API response.
type CalculationMetadata struct {
	CalculationID string `json:"calculationId"`
	TenantID      string `json:"tenantId"`
	StartedAt     string `json:"startedAt"`
	CompletedAt   string `json:"completedAt"`
	DurationMs    int64  `json:"durationMs"`
	Outcome       string `json:"outcome"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// CalculateResponse carries the base pricing and, when markup settings were
// supplied on the request, the final customer-facing pricing.
type CalculateResponse struct {
	Metadata    CalculationMetadata `json:"metadata"`
	Model       PricingModel        `json:"model"`
	BasePricing BasePricing         `json:"basePricing"`
	Final       *FinalPricing       `json:"final,omitempty"`
}

// FinalizeResponse is the markup/tax pipeline output on its own.
type FinalizeResponse struct {
	Metadata CalculationMetadata `json:"metadata"`
	Final    FinalPricing        `json:"final"`
}

// ValidateResponse wraps a compatibility report.
type ValidateResponse struct {
	Metadata CalculationMetadata `json:"metadata"`
	Report   CompatibilityReport `json:"report"`
}

// MigrateResponse carries the migrated data, the migration log, and the
// rollback snapshot the caller must persist to be able to restore.
type MigrateResponse struct {
	Metadata CalculationMetadata `json:"metadata"`
	Result   MigrationResult     `json:"result"`
	Rollback RollbackSnapshot    `json:"rollback"`
}

// RollbackResponse returns the restored pre-migration state.
type RollbackResponse struct {
	Metadata CalculationMetadata `json:"metadata"`
	Restored RollbackResult      `json:"restored"`
}

// ErrorResponse is the uniform JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
