package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	"github.com/m04kA/SMC-AdPlacementService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AdPlacementService/pkg/psqlbuilder"
)

const table = "subscriptions"

// columns порядок колонок совпадает с порядком полей в scan
var columns = []string{
	"id",
	"reference",
	"customer_id",
	"framework_contract_id",
	"account_executive_id",
	"asset_id",
	"asset_format",
	"asset_size",
	"content_type",
	"site",
	"zone",
	"duration_months",
	"payment_method",
	"installment_count",
	"advance_percentage",
	"zone_surcharge_override",
	"content_surcharge_override",
	"monthly_price",
	"total_value",
	"down_payment",
	"remaining_balance",
	"installment_amount",
	"start_date",
	"end_date",
	"state",
	"artwork_state",
	"advance_received",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с подписками на рекламные носители
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую подписку
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		SetMap(writableValues(sub)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return sub, nil
}

// GetByID получает подписку по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sub, err := scanSubscription(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan subscription: %w", ErrScanRow, err)
	}

	return sub, nil
}

// Update сохраняет изменяемые поля подписки
// Reference не перезаписывается, если уже задан
func (r *Repository) Update(ctx context.Context, sub *domain.Subscription) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values := writableValues(sub)
	values["reference"] = squirrel.Expr("COALESCE(NULLIF(reference, ''), ?)", sub.Reference)
	values["updated_at"] = squirrel.Expr("NOW()")

	query, args, err := psqlbuilder.Update(table).
		SetMap(values).
		Where(squirrel.Eq{"id": sub.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

// GetByAssetWithFilter получает подписки носителя с фильтрацией по:
// - состояниям (States) - опционально
// - пересечению с периодом [StartDate, EndDate], границы включительно - опционально
// - исключению одной подписки (ExcludeID)
//
// Внутри транзакции найденные строки блокируются (FOR UPDATE), чтобы
// параллельное подтверждение не проскочило между проверкой и коммитом.
func (r *Repository) GetByAssetWithFilter(ctx context.Context, filter domain.AssetSubscriptionsFilter) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := assetQuery(filter, dbmetrics.IsInTransaction(ctx)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAssetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAssetWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

// ListByCustomer получает подписки клиента, опционально по состоянию
func (r *Repository) ListByCustomer(ctx context.Context, filter domain.CustomerSubscriptionsFilter) ([]*domain.Subscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"customer_id": filter.CustomerID}).
		OrderBy("start_date DESC NULLS LAST", "id DESC")

	if filter.State != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"state": *filter.State})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSubscriptions(rows)
}

// assetQuery строит запрос подписок носителя по фильтру
func assetQuery(filter domain.AssetSubscriptionsFilter, forUpdate bool) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"asset_id": filter.AssetID})

	if len(filter.States) > 0 {
		states := make([]string, len(filter.States))
		for i, s := range filter.States {
			states[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"state": states})
	}

	if filter.ExcludeID != 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": filter.ExcludeID})
	}

	// Пересечение периодов: existing.start <= end AND existing.end >= start
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": *filter.EndDate})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.StartDate})
	}

	selectBuilder = selectBuilder.OrderBy("start_date ASC", "id ASC")

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder
}

// writableValues значения колонок, которые задаются приложением
func writableValues(sub *domain.Subscription) map[string]interface{} {
	return map[string]interface{}{
		"reference":                  sub.Reference,
		"customer_id":                sub.CustomerID,
		"framework_contract_id":      nullInt64(sub.FrameworkContractID),
		"account_executive_id":       nullInt64(sub.AccountExecutiveID),
		"asset_id":                   sub.AssetID,
		"asset_format":               sub.AssetFormat,
		"asset_size":                 sub.AssetSize,
		"content_type":               string(sub.ContentType),
		"site":                       string(sub.Site),
		"zone":                       string(sub.Zone),
		"duration_months":            int(sub.Duration),
		"payment_method":             string(sub.PaymentMethod),
		"installment_count":          sub.InstallmentCount,
		"advance_percentage":         sub.AdvancePercentage,
		"zone_surcharge_override":    sub.ZoneSurchargeOverride,
		"content_surcharge_override": sub.ContentSurchargeOverride,
		"monthly_price":              sub.MonthlyPrice,
		"total_value":                sub.TotalValue,
		"down_payment":               sub.DownPayment,
		"remaining_balance":          sub.RemainingBalance,
		"installment_amount":         sub.InstallmentAmount,
		"start_date":                 nullTime(sub.StartDate),
		"end_date":                   nullTime(sub.EndDate),
		"state":                      string(sub.State),
		"artwork_state":              string(sub.ArtworkState),
		"advance_received":           sub.AdvanceReceived,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSubscription сканирует одну строку в подписку
func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var (
		sub                       domain.Subscription
		frameworkContractID       sql.NullInt64
		accountExecutiveID        sql.NullInt64
		contentType, site, zone   string
		paymentMethod, state, art string
		duration                  int
		startDate, endDate        sql.NullTime
		createdAt, updatedAt      sql.NullTime
		zoneOverride              decimal.NullDecimal
		contentOverride           decimal.NullDecimal
	)

	err := row.Scan(
		&sub.ID,
		&sub.Reference,
		&sub.CustomerID,
		&frameworkContractID,
		&accountExecutiveID,
		&sub.AssetID,
		&sub.AssetFormat,
		&sub.AssetSize,
		&contentType,
		&site,
		&zone,
		&duration,
		&paymentMethod,
		&sub.InstallmentCount,
		&sub.AdvancePercentage,
		&zoneOverride,
		&contentOverride,
		&sub.MonthlyPrice,
		&sub.TotalValue,
		&sub.DownPayment,
		&sub.RemainingBalance,
		&sub.InstallmentAmount,
		&startDate,
		&endDate,
		&state,
		&art,
		&sub.AdvanceReceived,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.FrameworkContractID = int64Ptr(frameworkContractID)
	sub.AccountExecutiveID = int64Ptr(accountExecutiveID)
	sub.ContentType = domain.ContentType(contentType)
	sub.Site = domain.Site(site)
	sub.Zone = domain.Zone(zone)
	sub.Duration = domain.Duration(duration)
	sub.PaymentMethod = domain.PaymentMethod(paymentMethod)
	sub.ZoneSurchargeOverride = zoneOverride
	sub.ContentSurchargeOverride = contentOverride
	sub.StartDate = timePtr(startDate)
	sub.EndDate = timePtr(endDate)
	sub.State = domain.SubscriptionState(state)
	sub.ArtworkState = domain.ArtworkState(art)
	sub.CreatedAt = createdAt.Time
	sub.UpdatedAt = updatedAt.Time

	return &sub, nil
}

// scanSubscriptions сканирует результаты запроса в слайс подписок
func scanSubscriptions(rows *sql.Rows) ([]*domain.Subscription, error) {
	subs := make([]*domain.Subscription, 0)

	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSubscriptions - scan row: %w", ErrScanRow, err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSubscriptions - rows error: %w", ErrScanRow, err)
	}

	return subs, nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
