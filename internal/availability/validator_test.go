package availability

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id int64, state domain.SubscriptionState, start, end time.Time) domain.Subscription {
	s := domain.NewDraft()
	s.ID = id
	s.AssetID = 10
	s.Reference = "SUB / Acme / Pantalla"
	s.State = state
	s.StartDate = &start
	s.EndDate = &end
	return s
}

func operationalAsset() domain.AssetSnapshot {
	return domain.AssetSnapshot{
		AssetID:         10,
		Name:            "Pantalla LED",
		StockQuantity:   1,
		TechnicalStatus: domain.TechnicalOperational,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint", day(2024, 1, 1), day(2024, 3, 31), day(2024, 4, 1), day(2024, 6, 30), false},
		{"touching day", day(2024, 1, 1), day(2024, 3, 31), day(2024, 3, 31), day(2024, 6, 30), true},
		{"contained", day(2024, 1, 1), day(2024, 12, 31), day(2024, 5, 1), day(2024, 5, 2), true},
		{"same single day", day(2024, 2, 2), day(2024, 2, 2), day(2024, 2, 2), day(2024, 2, 2), true},
		{"time of day ignored", day(2024, 1, 1), day(2024, 3, 31).Add(23 * time.Hour), day(2024, 4, 1).Add(time.Hour), day(2024, 6, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestCheck_SkipsUnprotectedStates(t *testing.T) {
	v := NewValidator()
	broken := domain.AssetSnapshot{TechnicalStatus: domain.TechnicalOutOfService}

	for _, st := range []domain.SubscriptionState{domain.StateDraft, domain.StateWaitingPayment, domain.StatePaused, domain.StateCancel, domain.StateExpired} {
		sub := booking(1, st, day(2024, 1, 1), day(2024, 2, 1))
		assert.NoError(t, v.Check(sub, broken, nil), st)
	}
}

func TestCheck_OrderOfChecks(t *testing.T) {
	v := NewValidator()
	sub := booking(1, domain.StateConfirmed, day(2024, 1, 1), day(2024, 3, 31))
	other := Candidate{Subscription: booking(2, domain.StateActive, day(2024, 2, 1), day(2024, 2, 28))}

	noStock := domain.AssetSnapshot{Name: "Pantalla", StockQuantity: 0, TechnicalStatus: domain.TechnicalMaintenance}
	err := v.Check(sub, noStock, []Candidate{other})
	assert.True(t, errors.Is(err, domain.ErrAssetUnavailable))

	maintenance := operationalAsset()
	maintenance.TechnicalStatus = domain.TechnicalMaintenance
	err = v.Check(sub, maintenance, []Candidate{other})
	require.True(t, errors.Is(err, domain.ErrAssetNotOperational))
	assert.Contains(t, err.Error(), "Under Maintenance")

	err = v.Check(sub, operationalAsset(), []Candidate{other})
	assert.True(t, errors.Is(err, domain.ErrAssetDoubleBooked))
}

func TestCheck_StockLevels(t *testing.T) {
	v := NewValidator()
	sub := booking(1, domain.StateConfirmed, day(2024, 1, 1), day(2024, 3, 31))

	tests := []struct {
		stock     int
		available bool
	}{
		{stock: -1, available: false},
		{stock: 0, available: false},
		{stock: 1, available: true},
		{stock: 5, available: true},
	}

	for _, tt := range tests {
		asset := operationalAsset()
		asset.StockQuantity = tt.stock

		err := v.Check(sub, asset, nil)
		if tt.available {
			assert.NoError(t, err, "stock %d", tt.stock)
			continue
		}
		assert.True(t, errors.Is(err, domain.ErrAssetUnavailable), "stock %d", tt.stock)
	}
}

func TestCheck_ConflictContext(t *testing.T) {
	v := NewValidator()
	sub := booking(1, domain.StateActive, day(2024, 1, 1), day(2024, 3, 31))
	withContract := Candidate{
		Subscription: booking(2, domain.StateConfirmed, day(2024, 3, 31), day(2024, 6, 30)),
		ContractName: "CM-2024-001",
	}

	err := v.Check(sub, operationalAsset(), []Candidate{withContract})

	var violation *domain.RuleViolation
	require.True(t, errors.As(err, &violation))
	require.NotNil(t, violation.Conflict)
	assert.Equal(t, int64(2), violation.Conflict.SubscriptionID)
	assert.Equal(t, "CM-2024-001", violation.Conflict.ContractName)
	assert.Contains(t, err.Error(), "31/03/2024")
	assert.Contains(t, err.Error(), "30/06/2024")

	withContract.ContractName = ""
	err = v.Check(sub, operationalAsset(), []Candidate{withContract})
	assert.Contains(t, err.Error(), domain.NoContractName)
}

func TestCheck_IgnoredCandidates(t *testing.T) {
	v := NewValidator()
	sub := booking(1, domain.StateConfirmed, day(2024, 1, 1), day(2024, 3, 31))

	self := Candidate{Subscription: booking(1, domain.StateConfirmed, day(2024, 1, 1), day(2024, 3, 31))}
	draft := Candidate{Subscription: booking(2, domain.StateDraft, day(2024, 1, 1), day(2024, 3, 31))}
	cancelled := Candidate{Subscription: booking(3, domain.StateCancel, day(2024, 1, 1), day(2024, 3, 31))}
	otherAsset := Candidate{Subscription: booking(4, domain.StateActive, day(2024, 1, 1), day(2024, 3, 31))}
	otherAsset.Subscription.AssetID = 99
	later := Candidate{Subscription: booking(5, domain.StateActive, day(2024, 4, 1), day(2024, 6, 30))}

	assert.NoError(t, v.Check(sub, operationalAsset(), []Candidate{self, draft, cancelled, otherAsset, later}))
}

func TestCheck_MissingPeriodSkipsOverlap(t *testing.T) {
	v := NewValidator()
	sub := booking(1, domain.StateConfirmed, day(2024, 1, 1), day(2024, 3, 31))
	sub.EndDate = nil
	other := Candidate{Subscription: booking(2, domain.StateActive, day(2024, 1, 1), day(2024, 3, 31))}

	assert.NoError(t, v.Check(sub, operationalAsset(), []Candidate{other}))
}

func TestIndex_Exclusion(t *testing.T) {
	idx := NewIndex([]Entry{
		{ID: 1, Start: day(2024, 1, 1), End: day(2024, 12, 31)},
		{ID: 2, Start: day(2024, 2, 1), End: day(2024, 2, 10)},
	})

	e, ok := idx.FindConflict(day(2024, 2, 5), day(2024, 2, 6), 0)
	require.True(t, ok)
	assert.Equal(t, int64(1), e.ID)

	e, ok = idx.FindConflict(day(2024, 2, 5), day(2024, 2, 6), 1)
	require.True(t, ok)
	assert.Equal(t, int64(2), e.ID)

	_, ok = idx.FindConflict(day(2024, 6, 1), day(2024, 6, 2), 1)
	assert.False(t, ok)

	_, ok = NewIndex(nil).FindConflict(day(2024, 6, 1), day(2024, 6, 2), 0)
	assert.False(t, ok)
}

// linearConflict is the reference definition the index must agree with
func linearConflict(entries []Entry, start, end time.Time, excludeID int64) bool {
	for _, e := range entries {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if Overlaps(e.Start, e.End, start, end) {
			return true
		}
	}
	return false
}

func TestIndex_AgreesWithLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	origin := day(2024, 1, 1)

	for round := 0; round < 200; round++ {
		n := rng.Intn(12)
		entries := make([]Entry, n)
		for i := range entries {
			start := origin.AddDate(0, 0, rng.Intn(365))
			entries[i] = Entry{ID: int64(i + 1), Start: start, End: start.AddDate(0, 0, rng.Intn(90))}
		}
		idx := NewIndex(entries)
		require.Equal(t, n, idx.Len())

		for q := 0; q < 20; q++ {
			start := origin.AddDate(0, 0, rng.Intn(400)-20)
			end := start.AddDate(0, 0, rng.Intn(60))
			exclude := int64(rng.Intn(n + 1))

			e, got := idx.FindConflict(start, end, exclude)
			want := linearConflict(entries, start, end, exclude)
			require.Equal(t, want, got, "round %d query %d", round, q)
			if got {
				assert.NotEqual(t, exclude, e.ID)
				assert.True(t, Overlaps(e.Start, e.End, start, end))
			}
		}
	}
}
