package billing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/banquet-admin/internal/httperr"
)

const DefaultTaxRatePercent = 10.0

// WarningDepositExceedsTotal is surfaced when a deposit had to be clamped.
const WarningDepositExceedsTotal = "deposit_exceeds_total"

type Financials struct {
	Amount         float64 `json:"amount"`
	TaxRatePercent float64 `json:"tax_rate"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

var hundred = decimal.NewFromInt(100)

func checkNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return httperr.ErrValidation(field, "must_be_finite")
	}
	if v < 0 {
		return httperr.ErrValidation(field, "must_not_be_negative")
	}
	return nil
}

// Derive computes taxAmount = round(amount * rate / 100, 2) and
// totalAmount = amount + taxAmount. A nil rate means DefaultTaxRatePercent.
func Derive(amount float64, taxRatePercent *float64) (Financials, error) {
	return DeriveWithDefault(amount, taxRatePercent, DefaultTaxRatePercent)
}

func DeriveWithDefault(amount float64, taxRatePercent *float64, defaultRate float64) (Financials, error) {
	rate := defaultRate
	if taxRatePercent != nil {
		rate = *taxRatePercent
	}

	if err := checkNonNegative("amount", amount); err != nil {
		return Financials{}, err
	}
	if err := checkNonNegative("tax_rate", rate); err != nil {
		return Financials{}, err
	}

	amt := decimal.NewFromFloat(amount)
	tax := amt.Mul(decimal.NewFromFloat(rate)).Div(hundred).Round(2)
	total := amt.Add(tax)

	return Financials{
		Amount:         amount,
		TaxRatePercent: rate,
		TaxAmount:      tax.InexactFloat64(),
		TotalAmount:    total.InexactFloat64(),
	}, nil
}

// ClampDeposit returns min(deposit, total) and whether clamping happened.
func ClampDeposit(deposit, total float64) (float64, bool) {
	if deposit > total {
		return total, true
	}
	return deposit, false
}

// CheckDeposit validates both values before clamping.
func CheckDeposit(deposit, total float64) (float64, []string, error) {
	if err := checkNonNegative("deposit_amount", deposit); err != nil {
		return 0, nil, err
	}
	if err := checkNonNegative("total_amount", total); err != nil {
		return 0, nil, err
	}

	clamped, warn := ClampDeposit(deposit, total)
	if warn {
		return clamped, []string{WarningDepositExceedsTotal}, nil
	}
	return clamped, nil, nil
}

// Multiply is rate * units rounded to cents.
func Multiply(rate float64, units int) float64 {
	return decimal.NewFromFloat(rate).
		Mul(decimal.NewFromInt(int64(units))).
		Round(2).
		InexactFloat64()
}
