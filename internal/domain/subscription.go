package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is a time-bounded booking of one advertising asset for one customer
type Subscription struct {
	ID        int64
	Reference string // derived from customer/asset/zone, immutable once set

	CustomerID          int64
	FrameworkContractID *int64
	AccountExecutiveID  *int64
	AssetID             int64

	// Lineage copied read-only from the asset
	AssetFormat string
	AssetSize   string

	ContentType              ContentType
	Site                     Site
	Zone                     Zone
	Duration                 Duration
	PaymentMethod            PaymentMethod
	InstallmentCount         int
	AdvancePercentage        decimal.Decimal
	ZoneSurchargeOverride    decimal.NullDecimal
	ContentSurchargeOverride decimal.NullDecimal

	// Derived
	MonthlyPrice      decimal.Decimal
	TotalValue        decimal.Decimal
	DownPayment       decimal.Decimal
	RemainingBalance  decimal.Decimal
	InstallmentAmount decimal.Decimal

	StartDate *time.Time
	EndDate   *time.Time

	State           SubscriptionState
	ArtworkState    ArtworkState
	AdvanceReceived bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Selections are the inputs of the pricing engine
type Selections struct {
	Site                     Site
	Zone                     Zone
	ContentType              ContentType
	ZoneSurchargeOverride    decimal.NullDecimal
	ContentSurchargeOverride decimal.NullDecimal
}

// PaymentPlan is the financial breakdown of a subscription
type PaymentPlan struct {
	TotalValue        decimal.Decimal
	DownPayment       decimal.Decimal
	RemainingBalance  decimal.Decimal
	InstallmentAmount decimal.Decimal
}

// NewDraft returns a subscription with the default selections of a new booking
func NewDraft() Subscription {
	return Subscription{
		ContentType:       ContentStatic,
		PaymentMethod:     PaymentCash,
		InstallmentCount:  DefaultInstallmentCount,
		AdvancePercentage: decimal.Zero,
		State:             StateDraft,
		ArtworkState:      ArtworkPending,
	}
}

// Selections returns the pricing inputs of the subscription
func (s *Subscription) Selections() Selections {
	return Selections{
		Site:                     s.Site,
		Zone:                     s.Zone,
		ContentType:              s.ContentType,
		ZoneSurchargeOverride:    s.ZoneSurchargeOverride,
		ContentSurchargeOverride: s.ContentSurchargeOverride,
	}
}

// ApplyPlan stores a computed payment plan on the subscription
func (s *Subscription) ApplyPlan(p PaymentPlan) {
	s.TotalValue = p.TotalValue
	s.DownPayment = p.DownPayment
	s.RemainingBalance = p.RemainingBalance
	s.InstallmentAmount = p.InstallmentAmount
}

// RecomputeEndDate sets EndDate = StartDate + Duration months, or clears it when either is missing
func (s *Subscription) RecomputeEndDate() {
	s.EndDate = EndDateOf(s.StartDate, s.Duration)
}

// HasPeriod reports whether both bounds of the booked period are known
func (s *Subscription) HasPeriod() bool {
	return s.StartDate != nil && s.EndDate != nil
}

// IsProtected reports whether the subscription currently holds its asset
func (s *Subscription) IsProtected() bool {
	return s.State.IsProtected()
}

// IsTerminal reports whether the subscription reached end-of-life
func (s *Subscription) IsTerminal() bool {
	return s.State.IsTerminal()
}

// RequiresAdvance reports whether a down payment must be received before display
func (s *Subscription) RequiresAdvance() bool {
	return s.DownPayment.GreaterThan(decimal.Zero)
}

// Clone returns a deep copy, so guarded mutations never leak into the original
func (s Subscription) Clone() Subscription {
	out := s
	out.FrameworkContractID = copyInt64(s.FrameworkContractID)
	out.AccountExecutiveID = copyInt64(s.AccountExecutiveID)
	out.StartDate = copyTime(s.StartDate)
	out.EndDate = copyTime(s.EndDate)
	return out
}

// EndDateOf returns start + duration months, nil when either is missing
func EndDateOf(start *time.Time, d Duration) *time.Time {
	if start == nil || !d.IsValid() {
		return nil
	}
	end := start.AddDate(0, d.Months(), 0)
	return &end
}

// DateOnly truncates t to midnight UTC of its calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ReferenceName builds "SUB / <customer> / <asset> / <zone label>"; the zone part is
// omitted when the zone is not set
func ReferenceName(customerName, assetName string, zone Zone) string {
	customer := strings.TrimSpace(customerName)
	if customer == "" {
		customer = DefaultCustomerName
	}
	asset := strings.TrimSpace(assetName)
	if asset == "" {
		asset = DefaultAssetName
	}

	parts := []string{ReferencePrefix, customer, asset}
	if label := zone.Label(); label != "" {
		parts = append(parts, label)
	}
	return strings.Join(parts, " / ")
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
