package quote_price

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
	quotePrice "github.com/m04kA/SMC-AdPlacementService/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	AssetID int64 `json:"assetId"`

	ContentType *string `json:"contentType,omitempty"`
	Site        *string `json:"site,omitempty"`
	Zone        *string `json:"zone,omitempty"`
	Duration    *string `json:"duration,omitempty"`

	InstallmentCount         *int             `json:"installmentCount,omitempty"`
	AdvancePercentage        *decimal.Decimal `json:"advancePercentage,omitempty"`
	ZoneSurchargeOverride    *decimal.Decimal `json:"zoneSurchargeOverride,omitempty"`
	ContentSurchargeOverride *decimal.Decimal `json:"contentSurchargeOverride,omitempty"`
}

// QuoteResponse HTTP response model, суммы строками
type QuoteResponse struct {
	AssetID      int64  `json:"assetId"`
	AssetName    string `json:"assetName"`
	Site         string `json:"site,omitempty"`
	SiteInferred bool   `json:"siteInferred"`
	AssetFormat  string `json:"assetFormat,omitempty"`
	AssetSize    string `json:"assetSize,omitempty"`
	Months       int    `json:"months"`

	BasePrice        string `json:"basePrice"`
	SitePrestige     string `json:"sitePrestige"`
	ZoneSurcharge    string `json:"zoneSurcharge"`
	ContentSurcharge string `json:"contentSurcharge"`
	MonthlyPrice     string `json:"monthlyPrice"`

	TotalValue        string `json:"totalValue"`
	DownPayment       string `json:"downPayment"`
	RemainingBalance  string `json:"remainingBalance"`
	InstallmentAmount string `json:"installmentAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quotePrice.Request {
	return &quotePrice.Request{
		AssetID:                  r.AssetID,
		ContentType:              r.ContentType,
		Site:                     r.Site,
		Zone:                     r.Zone,
		Duration:                 r.Duration,
		InstallmentCount:         r.InstallmentCount,
		AdvancePercentage:        r.AdvancePercentage,
		ZoneSurchargeOverride:    r.ZoneSurchargeOverride,
		ContentSurchargeOverride: r.ContentSurchargeOverride,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response, p domain.CurrencyPrecision) *QuoteResponse {
	return &QuoteResponse{
		AssetID:           resp.AssetID,
		AssetName:         resp.AssetName,
		Site:              string(resp.Site),
		SiteInferred:      resp.SiteInferred,
		AssetFormat:       resp.AssetFormat,
		AssetSize:         resp.AssetSize,
		Months:            resp.Months,
		BasePrice:         p.Format(resp.Breakdown.Base),
		SitePrestige:      p.Format(resp.Breakdown.Prestige),
		ZoneSurcharge:     p.Format(resp.Breakdown.ZoneSurcharge),
		ContentSurcharge:  p.Format(resp.Breakdown.ContentSurcharge),
		MonthlyPrice:      p.Format(resp.Breakdown.MonthlyPrice),
		TotalValue:        p.Format(resp.Plan.TotalValue),
		DownPayment:       p.Format(resp.Plan.DownPayment),
		RemainingBalance:  p.Format(resp.Plan.RemainingBalance),
		InstallmentAmount: p.Format(resp.Plan.InstallmentAmount),
	}
}
