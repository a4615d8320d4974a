package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

var now = time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func draft() domain.Subscription {
	s := domain.NewDraft()
	s.ID = 1
	s.AssetID = 10
	s.StartDate = day(2024, time.January, 1)
	s.Duration = domain.Duration3
	s.RecomputeEndDate()
	return s
}

func transitionContext() TransitionContext {
	return TransitionContext{
		Actor: 42,
		Asset: domain.AssetSnapshot{
			AssetID:         10,
			Name:            "Pantalla LED",
			StockQuantity:   1,
			TechnicalStatus: domain.TechnicalOperational,
		},
		Now: now,
	}
}

func newMachine() *Machine {
	return NewMachine(availability.NewValidator())
}

func TestApply_SimpleTransitions(t *testing.T) {
	tests := []struct {
		op   Operation
		want domain.SubscriptionState
	}{
		{OpRequestApproval, domain.StateWaitingPayment},
		{OpConfirm, domain.StateConfirmed},
		{OpPause, domain.StatePaused},
		{OpCancel, domain.StateCancel},
		{OpToDraft, domain.StateDraft},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			sub := draft()
			next, notes, err := newMachine().Apply(sub, tt.op, transitionContext())

			require.NoError(t, err)
			assert.Equal(t, tt.want, next.State)
			assert.Equal(t, now, next.UpdatedAt)
			require.Len(t, notes, 1)
			assert.Equal(t, int64(42), notes[0].AuthorID)
			assert.Equal(t, int64(1), notes[0].SubscriptionID)
			assert.Equal(t, domain.StateDraft, sub.State)
		})
	}
}

func TestApply_AuditNotes(t *testing.T) {
	m := newMachine()

	_, notes, err := m.Apply(draft(), OpRequestApproval, transitionContext())
	require.NoError(t, err)
	assert.Contains(t, notes[0].Body, "Approval requested")

	_, notes, err = m.Apply(draft(), OpConfirm, transitionContext())
	require.NoError(t, err)
	assert.Contains(t, notes[0].Body, "payment has been validated")

	_, notes, err = m.Apply(draft(), OpPause, transitionContext())
	require.NoError(t, err)
	assert.Equal(t, "State changed from Draft to Paused.", notes[0].Body)
}

func TestApply_Activate(t *testing.T) {
	m := newMachine()

	t.Run("artwork not approved regardless of advance", func(t *testing.T) {
		for _, received := range []bool{true, false} {
			sub := draft()
			sub.DownPayment = decimal.NewFromInt(100)
			sub.AdvanceReceived = received

			got, _, err := m.Apply(sub, OpActivate, transitionContext())

			require.True(t, errors.Is(err, domain.ErrArtworkNotApproved))
			assert.Equal(t, domain.StateDraft, got.State)
		}
	})

	t.Run("advance pending", func(t *testing.T) {
		sub := draft()
		sub.ArtworkState = domain.ArtworkApproved
		sub.DownPayment = decimal.NewFromInt(100)

		_, _, err := m.Apply(sub, OpActivate, transitionContext())

		var violation *domain.RuleViolation
		require.True(t, errors.As(err, &violation))
		assert.Equal(t, domain.ErrAdvancePending, violation.Kind)
	})

	t.Run("no advance required", func(t *testing.T) {
		sub := draft()
		sub.ArtworkState = domain.ArtworkApproved

		got, _, err := m.Apply(sub, OpActivate, transitionContext())

		require.NoError(t, err)
		assert.Equal(t, domain.StateActive, got.State)
	})

	t.Run("advance received", func(t *testing.T) {
		sub := draft()
		sub.ArtworkState = domain.ArtworkApproved
		sub.DownPayment = decimal.NewFromInt(100)
		sub.AdvanceReceived = true

		got, _, err := m.Apply(sub, OpActivate, transitionContext())

		require.NoError(t, err)
		assert.Equal(t, domain.StateActive, got.State)
	})
}

func TestApply_ProtectedStatesRunAvailability(t *testing.T) {
	m := newMachine()
	tc := transitionContext()
	blocker := draft()
	blocker.ID = 2
	blocker.State = domain.StateActive
	tc.Candidates = []availability.Candidate{{Subscription: blocker, ContractName: "CM-7"}}

	sub := draft()
	got, notes, err := m.Apply(sub, OpConfirm, tc)

	require.True(t, errors.Is(err, domain.ErrAssetDoubleBooked))
	assert.Nil(t, notes)
	assert.Equal(t, sub, got)

	_, _, err = m.Apply(sub, OpPause, tc)
	assert.NoError(t, err)

	tc.Asset.StockQuantity = 0
	tc.Candidates = nil
	_, _, err = m.Apply(sub, OpConfirm, tc)
	assert.True(t, errors.Is(err, domain.ErrAssetUnavailable))
}

func TestApply_TerminalStates(t *testing.T) {
	m := newMachine()

	for _, st := range domain.TerminalStates {
		for _, op := range AllOperations {
			sub := draft()
			sub.State = st

			got, _, err := m.Apply(sub, op, transitionContext())

			if op == OpApproveArtwork {
				require.NoError(t, err)
				assert.Equal(t, domain.ArtworkApproved, got.ArtworkState)
				assert.Equal(t, st, got.State)
				continue
			}
			if op == OpCancel {
				require.NoError(t, err, "cancel from %s", st)
				assert.Equal(t, domain.StateCancel, got.State)
				continue
			}
			assert.True(t, errors.Is(err, domain.ErrTerminalState), "%s from %s", op, st)
			assert.Equal(t, st, got.State)
		}
	}
}

func TestApply_CancelFromAnyState(t *testing.T) {
	m := newMachine()

	for _, st := range []domain.SubscriptionState{
		domain.StateDraft, domain.StateWaitingPayment, domain.StateConfirmed, domain.StateActive,
		domain.StatePaused, domain.StateExpired, domain.StateCancel,
	} {
		sub := draft()
		sub.State = st

		got, notes, err := m.Apply(sub, OpCancel, transitionContext())

		require.NoError(t, err, "cancel from %s", st)
		assert.Equal(t, domain.StateCancel, got.State)
		assert.Len(t, notes, 1)
	}
}

func TestApply_Expire(t *testing.T) {
	m := newMachine()

	for _, st := range []domain.SubscriptionState{domain.StateConfirmed, domain.StateActive, domain.StatePaused} {
		sub := draft()
		sub.State = st
		got, _, err := m.Apply(sub, OpExpire, transitionContext())
		require.NoError(t, err)
		assert.Equal(t, domain.StateExpired, got.State)
	}

	for _, st := range []domain.SubscriptionState{domain.StateDraft, domain.StateWaitingPayment} {
		sub := draft()
		sub.State = st
		_, _, err := m.Apply(sub, OpExpire, transitionContext())
		assert.True(t, errors.Is(err, domain.ErrInvalidTransition), st)
	}
}

func TestApply_ApproveArtworkKeepsState(t *testing.T) {
	sub := draft()
	sub.State = domain.StateWaitingPayment

	got, notes, err := newMachine().Apply(sub, OpApproveArtwork, transitionContext())

	require.NoError(t, err)
	assert.Equal(t, domain.StateWaitingPayment, got.State)
	assert.Equal(t, domain.ArtworkApproved, got.ArtworkState)
	assert.Equal(t, domain.ArtworkPending, sub.ArtworkState)
	assert.Len(t, notes, 1)
}

func TestApply_UnknownOperation(t *testing.T) {
	_, _, err := newMachine().Apply(draft(), Operation("publish"), transitionContext())
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
}

func TestRevalidate(t *testing.T) {
	m := newMachine()
	tc := transitionContext()
	tc.Asset.TechnicalStatus = domain.TechnicalOutOfService

	sub := draft()
	assert.NoError(t, m.Revalidate(sub, tc.Asset, nil))

	sub.State = domain.StateActive
	assert.True(t, errors.Is(m.Revalidate(sub, tc.Asset, nil), domain.ErrAssetNotOperational))
}

func TestParseOperation(t *testing.T) {
	for _, op := range AllOperations {
		got, err := ParseOperation(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}
	_, err := ParseOperation("")
	assert.Error(t, err)
}
