package availability

import (
	"strings"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Candidate is another booking of the same asset, with the name of its framework
// contract resolved for conflict messages
type Candidate struct {
	Subscription domain.Subscription
	ContractName string
}

// Validator checks whether a booking may hold its asset
type Validator struct{}

// NewValidator creates a validator
func NewValidator() *Validator {
	return &Validator{}
}

// Check runs the eligibility checks for a booking in a protected state, stopping at
// the first failure: stock, then technical status, then date overlap with the
// protected candidates. Bookings outside the protected states always pass.
// Failures are *domain.RuleViolation.
func (v *Validator) Check(sub domain.Subscription, asset domain.AssetSnapshot, candidates []Candidate) error {
	if !sub.IsProtected() || sub.AssetID == 0 {
		return nil
	}

	if asset.StockQuantity <= 0 {
		return &domain.RuleViolation{
			Kind:      domain.ErrAssetUnavailable,
			AssetID:   sub.AssetID,
			AssetName: asset.DisplayName(),
		}
	}

	if !asset.IsOperational() {
		return &domain.RuleViolation{
			Kind:            domain.ErrAssetNotOperational,
			AssetID:         sub.AssetID,
			AssetName:       asset.DisplayName(),
			TechnicalStatus: asset.TechnicalStatus,
			Required:        domain.TechnicalOperational.Label(),
			Actual:          asset.TechnicalStatus.Label(),
		}
	}

	if !sub.HasPeriod() {
		return nil
	}

	conflict, ok := BuildIndex(sub.AssetID, candidates).FindConflict(*sub.StartDate, *sub.EndDate, sub.ID)
	if !ok {
		return nil
	}

	return &domain.RuleViolation{
		Kind:      domain.ErrAssetDoubleBooked,
		AssetID:   sub.AssetID,
		AssetName: asset.DisplayName(),
		Conflict: &domain.ConflictInfo{
			SubscriptionID: conflict.ID,
			Reference:      conflict.Reference,
			ContractName:   conflict.ContractName,
			StartDate:      conflict.Start,
			EndDate:        conflict.End,
		},
	}
}

// BuildIndex indexes the candidates that can block the asset: same asset,
// protected state and a complete period
func BuildIndex(assetID int64, candidates []Candidate) *Index {
	entries := make([]Entry, 0, len(candidates))
	for _, c := range candidates {
		s := c.Subscription
		if s.AssetID != assetID || !s.IsProtected() || !s.HasPeriod() {
			continue
		}

		name := strings.TrimSpace(c.ContractName)
		if name == "" {
			name = domain.NoContractName
		}

		entries = append(entries, Entry{
			ID:           s.ID,
			Reference:    s.Reference,
			ContractName: name,
			Start:        *s.StartDate,
			End:          *s.EndDate,
		})
	}
	return NewIndex(entries)
}
