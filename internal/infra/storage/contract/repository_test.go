package contract

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AdPlacementService/pkg/txmanager"
)

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

func TestGetByIDs_KeepsDriverErrorInChain(t *testing.T) {
	repo := NewRepository(failingExecutor{err: &pq.Error{Code: "40P01", Message: "deadlock detected"}})

	_, err := repo.GetByIDs(context.Background(), []int64{1, 2})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, txmanager.IsSerializationFailure(err), err.Error())
}

func TestGetByIDs_Empty(t *testing.T) {
	repo := NewRepository(failingExecutor{err: &pq.Error{Code: "40001"}})

	contracts, err := repo.GetByIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, contracts)
}
