package subscription

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/pkg/txmanager"
)

func TestAssetQuery_OverlapFilter(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := assetQuery(domain.AssetSubscriptionsFilter{
		AssetID:   10,
		States:    domain.ProtectedStates,
		StartDate: &start,
		EndDate:   &end,
		ExcludeID: 7,
	}, true).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "FROM subscriptions")
	assert.Contains(t, query, "asset_id = $1")
	assert.Contains(t, query, "state IN ($2,$3)")
	assert.Contains(t, query, "id <> $4")
	assert.Contains(t, query, "start_date <= $5")
	assert.Contains(t, query, "end_date >= $6")
	assert.Contains(t, query, "ORDER BY start_date ASC, id ASC")
	assert.Contains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{int64(10), "confirmed", "active", int64(7), end, start}, args)
}

func TestAssetQuery_NoOptionalFilters(t *testing.T) {
	query, args, err := assetQuery(domain.AssetSubscriptionsFilter{AssetID: 3}, false).ToSql()

	require.NoError(t, err)
	assert.NotContains(t, query, "state IN")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.NotContains(t, query, "<>")
	assert.Equal(t, []interface{}{int64(3)}, args)
}

func TestWritableValues(t *testing.T) {
	contract := int64(5)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	sub := domain.NewDraft()
	sub.FrameworkContractID = &contract
	sub.StartDate = &start
	sub.Duration = domain.Duration6
	sub.ZoneSurchargeOverride = decimal.NewNullDecimal(decimal.NewFromInt(10))

	values := writableValues(&sub)

	assert.Len(t, values, len(columns)-3)
	assert.Equal(t, sql.NullInt64{Int64: 5, Valid: true}, values["framework_contract_id"])
	assert.Equal(t, sql.NullInt64{}, values["account_executive_id"])
	assert.Equal(t, sql.NullTime{Time: start, Valid: true}, values["start_date"])
	assert.Equal(t, sql.NullTime{}, values["end_date"])
	assert.Equal(t, 6, values["duration_months"])
	assert.Equal(t, "draft", values["state"])
}

// failingExecutor отвечает ошибкой драйвера на любой запрос
type failingExecutor struct {
	err error
}

func (e failingExecutor) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, e.err
}

func (e failingExecutor) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, e.err
}

func (e failingExecutor) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestRepository_KeepsDriverErrorInChain(t *testing.T) {
	repo := NewRepository(failingExecutor{err: &pq.Error{Code: "40001", Message: "could not serialize access"}})
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	sub := domain.NewDraft()
	sub.ID = 1

	err := repo.Update(context.Background(), &sub)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, txmanager.IsSerializationFailure(err), err.Error())

	_, err = repo.GetByAssetWithFilter(context.Background(), domain.AssetSubscriptionsFilter{
		AssetID:   10,
		StartDate: &start,
		EndDate:   &start,
	})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, txmanager.IsSerializationFailure(err), err.Error())

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}
