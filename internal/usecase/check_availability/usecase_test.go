package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdPlacementService/internal/availability"
	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-AdPlacementService/pkg/logger"
)

type fakeRepo map[int64]domain.Subscription

func (r fakeRepo) GetByID(_ context.Context, id int64) (*domain.Subscription, error) {
	s, ok := r[id]
	if !ok {
		return nil, subscriptionRepo.ErrSubscriptionNotFound
	}
	return &s, nil
}

type fakeResolver struct {
	asset domain.AssetSnapshot
}

func (r fakeResolver) Resolve(context.Context, int64) (*domain.AssetSnapshot, error) {
	a := r.asset
	return &a, nil
}

type fakeCandidates []availability.Candidate

func (c fakeCandidates) Candidates(context.Context, domain.Subscription) ([]availability.Candidate, error) {
	return c, nil
}

func day(m time.Month, d int) *time.Time {
	t := time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sub(id int64, state domain.SubscriptionState, start *time.Time) domain.Subscription {
	s := domain.NewDraft()
	s.ID = id
	s.AssetID = 10
	s.State = state
	s.StartDate = start
	s.Duration = domain.Duration3
	s.RecomputeEndDate()
	return s
}

func operational() domain.AssetSnapshot {
	return domain.AssetSnapshot{AssetID: 10, Name: "LED", StockQuantity: 1, TechnicalStatus: domain.TechnicalOperational}
}

func TestExecute_DraftProbedAsConfirmed(t *testing.T) {
	holder := sub(2, domain.StateActive, day(time.March, 1))
	repo := fakeRepo{1: sub(1, domain.StateDraft, day(time.April, 15)), 2: holder}
	uc := NewUseCase(repo, fakeResolver{operational()},
		fakeCandidates{{Subscription: holder, ContractName: "CM-2"}}, availability.NewValidator(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.NotNil(t, resp.Violation)
	assert.ErrorIs(t, resp.Violation, domain.ErrAssetDoubleBooked)
	assert.Equal(t, int64(2), resp.Violation.Conflict.SubscriptionID)
	assert.Equal(t, domain.StateDraft, resp.State)
}

func TestExecute_Available(t *testing.T) {
	repo := fakeRepo{1: sub(1, domain.StateConfirmed, day(time.April, 15))}
	uc := NewUseCase(repo, fakeResolver{operational()}, fakeCandidates{}, availability.NewValidator(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Nil(t, resp.Violation)
}

func TestExecute_AssetInMaintenance(t *testing.T) {
	asset := operational()
	asset.TechnicalStatus = domain.TechnicalMaintenance
	repo := fakeRepo{1: sub(1, domain.StateDraft, nil)}
	uc := NewUseCase(repo, fakeResolver{asset}, fakeCandidates{}, availability.NewValidator(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, resp.Violation, domain.ErrAssetNotOperational)
}

func TestExecute_TerminalAndMissing(t *testing.T) {
	repo := fakeRepo{1: sub(1, domain.StateExpired, day(time.April, 15))}
	uc := NewUseCase(repo, fakeResolver{operational()}, fakeCandidates{}, availability.NewValidator(), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{SubscriptionID: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, resp.Violation, domain.ErrTerminalState)

	_, err = uc.Execute(context.Background(), &Request{SubscriptionID: 5})
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
