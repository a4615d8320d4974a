package payment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AdPlacementService/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ParseMonths parses the textual form of a duration. Anything that is not a
// bookable duration counts as zero months.
func ParseMonths(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return domain.Duration(n).Months()
}

// ComputePlan derives the financial breakdown of a booking:
//
//	total       = monthly * months
//	downPayment = total * advance/100, exactly 0 when advance <= 0
//	remaining   = total - downPayment
//	installment = remaining / installments, 0 when installments <= 0
//
// It never fails; no rounding is applied.
func ComputePlan(monthlyPrice decimal.Decimal, durationText string, advancePct decimal.Decimal, installments int) domain.PaymentPlan {
	total := monthlyPrice.Mul(decimal.NewFromInt(int64(ParseMonths(durationText))))

	downPayment := decimal.Zero
	if advancePct.GreaterThan(decimal.Zero) {
		downPayment = total.Mul(advancePct).Div(hundred)
	}

	remaining := total.Sub(downPayment)

	installment := decimal.Zero
	if installments > 0 {
		installment = remaining.Div(decimal.NewFromInt(int64(installments)))
	}

	return domain.PaymentPlan{
		TotalValue:        total,
		DownPayment:       downPayment,
		RemainingBalance:  remaining,
		InstallmentAmount: installment,
	}
}

// PlanFor computes the plan of a subscription from its own payment terms
func PlanFor(sub domain.Subscription, monthlyPrice decimal.Decimal) domain.PaymentPlan {
	return ComputePlan(monthlyPrice, sub.Duration.String(), sub.AdvancePercentage, sub.InstallmentCount)
}

// Validate checks the payment terms entered by a user
func Validate(advancePct decimal.Decimal, installments int) error {
	if advancePct.LessThan(decimal.NewFromInt(domain.MinAdvancePercentage)) ||
		advancePct.GreaterThan(decimal.NewFromInt(domain.MaxAdvancePercentage)) {
		return fmt.Errorf("%w: got %s", ErrInvalidAdvancePercentage, advancePct.String())
	}
	if installments < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidInstallmentCount, installments)
	}
	if installments > domain.MaxInstallmentCount {
		return fmt.Errorf("%w: at most %d installments, got %d", ErrInvalidInstallmentCount, domain.MaxInstallmentCount, installments)
	}
	return nil
}
