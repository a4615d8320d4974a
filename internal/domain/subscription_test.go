package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNewDraft_Defaults(t *testing.T) {
	s := NewDraft()

	assert.Equal(t, StateDraft, s.State)
	assert.Equal(t, ArtworkPending, s.ArtworkState)
	assert.Equal(t, ContentStatic, s.ContentType)
	assert.Equal(t, PaymentCash, s.PaymentMethod)
	assert.Equal(t, 1, s.InstallmentCount)
	assert.True(t, s.AdvancePercentage.IsZero())
	assert.False(t, s.AdvanceReceived)
}

func TestRecomputeEndDate(t *testing.T) {
	tests := []struct {
		name     string
		start    *time.Time
		duration Duration
		want     *time.Time
	}{
		{"six months", date(2024, time.January, 1), Duration6, date(2024, time.July, 1)},
		{"twenty four months", date(2024, time.March, 15), Duration24, date(2026, time.March, 15)},
		{"missing start", nil, Duration3, nil},
		{"missing duration", date(2024, time.January, 1), 0, nil},
		{"invalid duration", date(2024, time.January, 1), Duration(5), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Subscription{StartDate: tt.start, Duration: tt.duration}
			s.RecomputeEndDate()
			assert.Equal(t, tt.want, s.EndDate)
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	contract := int64(7)
	s := Subscription{FrameworkContractID: &contract, StartDate: date(2024, time.January, 1)}

	c := s.Clone()
	*c.FrameworkContractID = 8
	*c.StartDate = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(7), *s.FrameworkContractID)
	assert.Equal(t, 2024, s.StartDate.Year())
}

func TestReferenceName(t *testing.T) {
	assert.Equal(t, "SUB / ACME / LED Screen 01 / Entrance", ReferenceName("ACME", "LED Screen 01", ZoneEntrance))
	assert.Equal(t, "SUB / ACME / LED Screen 01", ReferenceName("ACME", "LED Screen 01", ""))
	assert.Equal(t, "SUB / Customer / Asset / Food Court", ReferenceName(" ", "", ZoneFoodCourt))
}

func TestRequiresAdvance(t *testing.T) {
	s := Subscription{DownPayment: decimal.Zero}
	assert.False(t, s.RequiresAdvance())

	s.DownPayment = decimal.NewFromInt(1)
	assert.True(t, s.RequiresAdvance())
}

func TestStatePredicates(t *testing.T) {
	for _, st := range ProtectedStates {
		assert.True(t, st.IsProtected(), st)
		assert.False(t, st.IsTerminal(), st)
	}
	for _, st := range TerminalStates {
		assert.True(t, st.IsTerminal(), st)
		assert.False(t, st.IsProtected(), st)
	}
	assert.False(t, StatePaused.IsProtected())
	assert.False(t, StateDraft.IsTerminal())
}

func TestParseSelections(t *testing.T) {
	site, err := ParseSite("buenavista")
	require.NoError(t, err)
	assert.Equal(t, "Buenavista", site.Label())

	_, err = ParseSite("unknown_mall")
	assert.ErrorIs(t, err, ErrUnknownSelection)

	d, err := ParseDuration(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, d.Months())

	_, err = ParseDuration("5")
	assert.ErrorIs(t, err, ErrUnknownSelection)
	_, err = ParseDuration("six")
	assert.ErrorIs(t, err, ErrUnknownSelection)

	_, err = ParseZone("rooftop")
	assert.ErrorIs(t, err, ErrUnknownSelection)

	_, err = ParsePaymentMethod("installments")
	assert.NoError(t, err)
}

func TestZoneMatchTerms(t *testing.T) {
	assert.Equal(t, []string{"Food Court", "plazoleta", "plazoleta de comidas"}, ZoneFoodCourt.MatchTerms())
	assert.Nil(t, Zone("").MatchTerms())
}

func TestRuleViolation(t *testing.T) {
	v := &RuleViolation{
		Kind:      ErrAssetDoubleBooked,
		AssetName: "LED 01",
		Conflict: &ConflictInfo{
			ContractName: "CM-2024-01",
			StartDate:    *date(2024, time.January, 1),
			EndDate:      *date(2024, time.March, 31),
		},
	}
	err := fmt.Errorf("wrapped: %w", v)

	assert.True(t, errors.Is(err, ErrAssetDoubleBooked))
	assert.True(t, IsRuleViolation(err))
	assert.Contains(t, v.Error(), "CM-2024-01")
	assert.Contains(t, v.Error(), "01/01/2024")
	assert.Contains(t, v.Error(), "31/03/2024")

	notOp := &RuleViolation{Kind: ErrAssetNotOperational, AssetName: "LED 01", TechnicalStatus: TechnicalMaintenance}
	assert.Contains(t, notOp.Error(), "Under Maintenance")
}

func TestCurrencyPrecision(t *testing.T) {
	p := CurrencyPrecision{Places: 2}
	amount := decimal.RequireFromString("4200000.005")

	assert.Equal(t, "4200000.01", p.Format(amount))
	assert.True(t, p.Round(amount).Equal(decimal.RequireFromString("4200000.01")))
	assert.Equal(t, "3.00", p.Format(decimal.NewFromInt(3)))
}

func TestViolationKind(t *testing.T) {
	assert.Equal(t, "double_booked", ViolationKind(fmt.Errorf("x: %w", &RuleViolation{Kind: ErrAssetDoubleBooked})))
	assert.Equal(t, "not_operational", ViolationKind(&RuleViolation{Kind: ErrAssetNotOperational}))
	assert.Equal(t, "", ViolationKind(errors.New("boom")))
}
