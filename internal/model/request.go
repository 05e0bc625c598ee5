package model

// CalculateRequest asks for a base pricing, and optionally the final
// customer-facing pricing when markup settings are supplied inline.
type CalculateRequest struct {
	TenantID     string          `json:"tenantId"`
	ContractorID string          `json:"contractorId,omitempty"`
	Model        string          `json:"model" validate:"required"`
	Rules        Rules           `json:"rules"`
	Measurements Measurements    `json:"measurements"`
	Settings     *MarkupSettings `json:"settings,omitempty"`
}

// FinalizeRequest layers markup settings onto an already computed base.
type FinalizeRequest struct {
	TenantID    string         `json:"tenantId"`
	BasePricing BasePricing    `json:"basePricing"`
	Settings    MarkupSettings `json:"settings"`
}

// SchemeChangeRequest drives both compatibility validation and migration.
type SchemeChangeRequest struct {
	TenantID   string    `json:"tenantId"`
	FromScheme string    `json:"fromScheme" validate:"required"`
	ToScheme   string    `json:"toScheme" validate:"required"`
	Data       QuoteData `json:"data"`
}

// RollbackRequest restores a quote from a previously issued snapshot.
type RollbackRequest struct {
	TenantID string           `json:"tenantId"`
	Snapshot RollbackSnapshot `json:"snapshot"`
}
