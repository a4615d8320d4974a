package contract

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdPlacementService/pkg/psqlbuilder"
)

const table = "framework_contracts"

var columns = []string{"id", "name", "customer_id", "account_executive_id"}

// Repository репозиторий рамочных договоров (только чтение, мастер-данные ведутся снаружи)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рамочных договоров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает рамочный договор по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.FrameworkContract, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	contract, err := scanContract(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan contract: %w", ErrScanRow, err)
	}

	return contract, nil
}

// GetByIDs получает рамочные договоры по списку ID
// Отсутствующие договоры просто не попадают в результат
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.FrameworkContract, error) {
	result := make(map[int64]*domain.FrameworkContract, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %w", ErrScanRow, err)
		}
		result[contract.ID] = contract
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContract(row rowScanner) (*domain.FrameworkContract, error) {
	var (
		contract           domain.FrameworkContract
		accountExecutiveID sql.NullInt64
	)

	if err := row.Scan(&contract.ID, &contract.Name, &contract.CustomerID, &accountExecutiveID); err != nil {
		return nil, err
	}

	if accountExecutiveID.Valid {
		id := accountExecutiveID.Int64
		contract.AccountExecutiveID = &id
	}

	return &contract, nil
}
