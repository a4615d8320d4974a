package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TechnicalStatus is the operational condition of a physical asset
type TechnicalStatus string

const (
	TechnicalOperational  TechnicalStatus = "operational"
	TechnicalMaintenance  TechnicalStatus = "maintenance"
	TechnicalOutOfService TechnicalStatus = "out_of_service"
)

var technicalStatusLabels = map[TechnicalStatus]string{
	TechnicalOperational:  "Operational",
	TechnicalMaintenance:  "Under Maintenance",
	TechnicalOutOfService: "Out of Service",
}

// ParseTechnicalStatus validates a technical status key
func ParseTechnicalStatus(s string) (TechnicalStatus, error) {
	t := TechnicalStatus(strings.TrimSpace(s))
	if _, ok := technicalStatusLabels[t]; !ok {
		return "", fmt.Errorf("%w: technical status %q", ErrUnknownSelection, s)
	}
	return t, nil
}

// Label returns the human label of the status; unknown statuses read as not operational
func (t TechnicalStatus) Label() string {
	if label, ok := technicalStatusLabels[t]; ok {
		return label
	}
	return "Not Operational"
}

// AttributeValue is one (attribute, value, surcharge) triple of an asset variant
type AttributeValue struct {
	Attribute  string
	Value      string
	PriceExtra decimal.Decimal
}

// AssetSnapshot is the read-only view of an asset at the time of a computation.
// It is owned by the inventory catalog and never mutated here.
type AssetSnapshot struct {
	AssetID         int64
	Name            string
	BasePrice       decimal.Decimal
	PriceExtra      decimal.Decimal // surcharge already bound to the variant (size, format)
	Attributes      []AttributeValue
	StockQuantity   int
	TechnicalStatus TechnicalStatus
}

// DisplayName returns the asset name, falling back to its id
func (a AssetSnapshot) DisplayName() string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	return fmt.Sprintf("asset #%d", a.AssetID)
}

// IsOperational reports whether the asset can be booked from a technical standpoint
func (a AssetSnapshot) IsOperational() bool {
	return a.TechnicalStatus == TechnicalOperational
}

// FrameworkContract is an umbrella agreement grouping subscriptions of one customer
type FrameworkContract struct {
	ID                 int64
	Name               string
	CustomerID         int64
	AccountExecutiveID *int64
}
