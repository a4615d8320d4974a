package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-AdPlacementService/internal/infra/storage/subscription"
	"github.com/m04kA/SMC-AdPlacementService/internal/service/subscriptions/models"
	"github.com/m04kA/SMC-AdPlacementService/pkg/logger"
	"github.com/m04kA/SMC-AdPlacementService/pkg/txmanager"
)

type fakeSubscriptionRepo struct {
	byID        map[int64]*domain.Subscription
	byAsset     []*domain.Subscription
	assetFilter domain.AssetSubscriptionsFilter
	err         error
}

func (r *fakeSubscriptionRepo) GetByID(_ context.Context, id int64) (*domain.Subscription, error) {
	if r.err != nil {
		return nil, r.err
	}
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return nil, subscriptionRepo.ErrSubscriptionNotFound
}

func (r *fakeSubscriptionRepo) GetByAssetWithFilter(_ context.Context, filter domain.AssetSubscriptionsFilter) ([]*domain.Subscription, error) {
	r.assetFilter = filter
	return r.byAsset, r.err
}

func (r *fakeSubscriptionRepo) ListByCustomer(_ context.Context, _ domain.CustomerSubscriptionsFilter) ([]*domain.Subscription, error) {
	return r.byAsset, r.err
}

type fakeContractRepo struct {
	contracts map[int64]*domain.FrameworkContract
	asked     []int64
}

func (r *fakeContractRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*domain.FrameworkContract, error) {
	r.asked = ids
	return r.contracts, nil
}

func period(sub *domain.Subscription, y int, m time.Month, d int, dur domain.Duration) {
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	sub.StartDate = &start
	sub.Duration = dur
	sub.RecomputeEndDate()
}

func TestGetByID(t *testing.T) {
	repo := &fakeSubscriptionRepo{byID: map[int64]*domain.Subscription{1: {ID: 1}}}
	s := NewService(repo, &fakeContractRepo{}, logger.Nop())

	sub, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sub.ID)

	_, err = s.GetByID(context.Background(), 2)
	assert.True(t, errors.Is(err, ErrSubscriptionNotFound))

	repo.err = errors.New("db down")
	_, err = s.GetByID(context.Background(), 1)
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestCandidates(t *testing.T) {
	contractA, contractB := int64(100), int64(200)
	first := &domain.Subscription{ID: 2, AssetID: 10, FrameworkContractID: &contractA, State: domain.StateActive}
	second := &domain.Subscription{ID: 3, AssetID: 10, FrameworkContractID: &contractA, State: domain.StateConfirmed}
	third := &domain.Subscription{ID: 4, AssetID: 10, FrameworkContractID: &contractB, State: domain.StateConfirmed}
	noContract := &domain.Subscription{ID: 5, AssetID: 10, State: domain.StateConfirmed}

	repo := &fakeSubscriptionRepo{byAsset: []*domain.Subscription{first, second, third, noContract}}
	contracts := &fakeContractRepo{contracts: map[int64]*domain.FrameworkContract{
		100: {ID: 100, Name: "CM-100"},
	}}
	s := NewService(repo, contracts, logger.Nop())

	sub := domain.Subscription{ID: 1, AssetID: 10}
	period(&sub, 2024, time.January, 1, domain.Duration3)

	candidates, err := s.Candidates(context.Background(), sub)

	require.NoError(t, err)
	require.Len(t, candidates, 4)
	assert.Equal(t, "CM-100", candidates[0].ContractName)
	assert.Equal(t, "CM-100", candidates[1].ContractName)
	assert.Empty(t, candidates[2].ContractName)
	assert.Empty(t, candidates[3].ContractName)
	assert.Equal(t, []int64{100, 200}, contracts.asked)

	assert.Equal(t, int64(10), repo.assetFilter.AssetID)
	assert.Equal(t, int64(1), repo.assetFilter.ExcludeID)
	assert.Equal(t, domain.ProtectedStates, repo.assetFilter.States)
	assert.Equal(t, sub.StartDate, repo.assetFilter.StartDate)
	assert.Equal(t, sub.EndDate, repo.assetFilter.EndDate)
}

func TestCandidates_NoPeriod(t *testing.T) {
	repo := &fakeSubscriptionRepo{}
	s := NewService(repo, &fakeContractRepo{}, logger.Nop())

	candidates, err := s.Candidates(context.Background(), domain.Subscription{ID: 1, AssetID: 10})

	require.NoError(t, err)
	assert.Nil(t, candidates)
	assert.Zero(t, repo.assetFilter.AssetID)
}

func TestListByAsset_InvalidState(t *testing.T) {
	s := NewService(&fakeSubscriptionRepo{}, &fakeContractRepo{}, logger.Nop())

	_, err := s.ListByAsset(context.Background(), &models.ListByAssetRequest{AssetID: 1, States: []string{"archived"}})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestCandidates_SerializationFailureStaysRetryable(t *testing.T) {
	repo := &fakeSubscriptionRepo{err: fmt.Errorf("%w: GetByAssetWithFilter - execute query: %w",
		subscriptionRepo.ErrExecQuery, &pq.Error{Code: "40001"})}
	s := NewService(repo, &fakeContractRepo{}, logger.Nop())

	sub := domain.Subscription{ID: 1, AssetID: 10, State: domain.StateConfirmed}
	period(&sub, 2024, time.January, 1, domain.Duration3)

	_, err := s.Candidates(context.Background(), sub)

	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, txmanager.IsSerializationFailure(err), err.Error())
}
