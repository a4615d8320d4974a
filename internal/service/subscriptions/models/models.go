package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

// Request модели

// ListByAssetRequest запрос на получение подписок носителя
type ListByAssetRequest struct {
	AssetID   int64
	States    []string   // Фильтр по состояниям (опционально)
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListByAssetRequest) ToDomainFilter() (domain.AssetSubscriptionsFilter, error) {
	filter := domain.AssetSubscriptionsFilter{
		AssetID:   r.AssetID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return filter, fmt.Errorf("end date %s is before start date %s",
			r.EndDate.Format(domain.DateFormat), r.StartDate.Format(domain.DateFormat))
	}

	for _, raw := range r.States {
		state, err := domain.ParseSubscriptionState(raw)
		if err != nil {
			return filter, err
		}
		filter.States = append(filter.States, state)
	}

	return filter, nil
}

// ListByCustomerRequest запрос на получение подписок клиента
type ListByCustomerRequest struct {
	CustomerID int64
	State      *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListByCustomerRequest) ToDomainFilter() (domain.CustomerSubscriptionsFilter, error) {
	filter := domain.CustomerSubscriptionsFilter{CustomerID: r.CustomerID}

	if r.State != nil {
		state, err := domain.ParseSubscriptionState(*r.State)
		if err != nil {
			return filter, err
		}
		filter.State = &state
	}

	return filter, nil
}

// Response модели

// SubscriptionResponse ответ с данными подписки
// Денежные значения передаются строками, округлёнными до точности валюты
type SubscriptionResponse struct {
	ID                  int64  `json:"id"`
	Reference           string `json:"reference"`
	CustomerID          int64  `json:"customerId"`
	FrameworkContractID *int64 `json:"frameworkContractId,omitempty"`
	AccountExecutiveID  *int64 `json:"accountExecutiveId,omitempty"`
	AssetID             int64  `json:"assetId"`
	AssetFormat         string `json:"assetFormat,omitempty"`
	AssetSize           string `json:"assetSize,omitempty"`

	ContentType              string  `json:"contentType"`
	Site                     string  `json:"site,omitempty"`
	Zone                     string  `json:"zone,omitempty"`
	DurationMonths           int     `json:"durationMonths"`
	PaymentMethod            string  `json:"paymentMethod"`
	InstallmentCount         int     `json:"installmentCount"`
	AdvancePercentage        string  `json:"advancePercentage"`
	ZoneSurchargeOverride    *string `json:"zoneSurchargeOverride,omitempty"`
	ContentSurchargeOverride *string `json:"contentSurchargeOverride,omitempty"`

	MonthlyPrice      string `json:"monthlyPrice"`
	TotalValue        string `json:"totalValue"`
	DownPayment       string `json:"downPayment"`
	RemainingBalance  string `json:"remainingBalance"`
	InstallmentAmount string `json:"installmentAmount"`

	StartDate *string `json:"startDate,omitempty"` // "2024-01-01"
	EndDate   *string `json:"endDate,omitempty"`

	State           string `json:"state"`
	StateLabel      string `json:"stateLabel"`
	ArtworkState    string `json:"artworkState"`
	AdvanceReceived bool   `json:"advanceReceived"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubscriptionListResponse ответ со списком подписок
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// Методы конвертации

// FromDomainSubscription конвертирует domain модель в DTO
func FromDomainSubscription(s *domain.Subscription, precision domain.CurrencyPrecision) *SubscriptionResponse {
	if s == nil {
		return nil
	}

	resp := &SubscriptionResponse{
		ID:                  s.ID,
		Reference:           s.Reference,
		CustomerID:          s.CustomerID,
		FrameworkContractID: s.FrameworkContractID,
		AccountExecutiveID:  s.AccountExecutiveID,
		AssetID:             s.AssetID,
		AssetFormat:         s.AssetFormat,
		AssetSize:           s.AssetSize,
		ContentType:         string(s.ContentType),
		Site:                string(s.Site),
		Zone:                string(s.Zone),
		DurationMonths:      s.Duration.Months(),
		PaymentMethod:       string(s.PaymentMethod),
		InstallmentCount:    s.InstallmentCount,
		AdvancePercentage:   s.AdvancePercentage.String(),
		MonthlyPrice:        precision.Format(s.MonthlyPrice),
		TotalValue:          precision.Format(s.TotalValue),
		DownPayment:         precision.Format(s.DownPayment),
		RemainingBalance:    precision.Format(s.RemainingBalance),
		InstallmentAmount:   precision.Format(s.InstallmentAmount),
		State:               string(s.State),
		StateLabel:          s.State.Label(),
		ArtworkState:        string(s.ArtworkState),
		AdvanceReceived:     s.AdvanceReceived,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}

	if s.ZoneSurchargeOverride.Valid {
		v := precision.Format(s.ZoneSurchargeOverride.Decimal)
		resp.ZoneSurchargeOverride = &v
	}
	if s.ContentSurchargeOverride.Valid {
		v := precision.Format(s.ContentSurchargeOverride.Decimal)
		resp.ContentSurchargeOverride = &v
	}
	if s.StartDate != nil {
		v := s.StartDate.Format(domain.DateFormat)
		resp.StartDate = &v
	}
	if s.EndDate != nil {
		v := s.EndDate.Format(domain.DateFormat)
		resp.EndDate = &v
	}

	return resp
}

// FromDomainSubscriptionList конвертирует список domain моделей в DTO
func FromDomainSubscriptionList(subs []*domain.Subscription, precision domain.CurrencyPrecision) *SubscriptionListResponse {
	resp := &SubscriptionListResponse{
		Subscriptions: make([]SubscriptionResponse, 0, len(subs)),
	}

	for _, s := range subs {
		if dto := FromDomainSubscription(s, precision); dto != nil {
			resp.Subscriptions = append(resp.Subscriptions, *dto)
		}
	}

	return resp
}
