// Package pricing recomputes the checkout price breakdown when the user
// changes shipping option in the payment sheet. The recompute is a pure
// function over the surcharge table; callers decide what to do with the
// resulting summary.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"swagshop/internal/models"
)

// CurrencyCode is fixed for this storefront.
const CurrencyCode = "USD"

// CountryCode is fixed for this storefront.
const CountryCode = "US"

// SurchargeTable maps a shipping option id to its surcharge amount.
// Keys must cover every id the sheet can offer.
type SurchargeTable map[string]decimal.Decimal

// NewSurchargeTable builds the lookup table from the selectable shipping
// options. A negative surcharge is a configuration fault.
func NewSurchargeTable(options []models.ShippingOption) (SurchargeTable, error) {
	table := make(SurchargeTable, len(options))
	for _, opt := range options {
		if opt.Surcharge.IsNegative() {
			return nil, fmt.Errorf("%w: option %q", ErrNegativeSurcharge, opt.ID)
		}
		table[opt.ID] = opt.Surcharge
	}
	return table, nil
}

// Surcharge returns the surcharge for an option id.
func (t SurchargeTable) Surcharge(optionID string) (decimal.Decimal, error) {
	surcharge, ok := t[optionID]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrUnknownShippingOption, optionID)
	}
	return surcharge, nil
}

// Recompute produces the final price summary for the selected shipping option:
// new total = base + surcharge, rounded to two decimals half-up, with a
// Subtotal line for the base amount and a Shipping line for the surcharge.
// An option id absent from the table is an invalid-input fault, never a NaN
// propagated downstream.
func Recompute(base decimal.Decimal, optionID string, table SurchargeTable) (models.TransactionInfo, error) {
	if base.IsNegative() {
		return models.TransactionInfo{}, fmt.Errorf("%w: %s", ErrNegativeBase, base)
	}

	surcharge, err := table.Surcharge(optionID)
	if err != nil {
		return models.TransactionInfo{}, err
	}

	total := base.Add(surcharge).Round(2)

	return models.TransactionInfo{
		DisplayItems: []models.DisplayItem{
			{
				Label:  "Subtotal",
				Type:   models.DisplayItemSubtotal,
				Price:  base.Round(2).StringFixed(2),
				Status: models.TransactionStatusFinal,
			},
			{
				Label:  "Shipping",
				Type:   models.DisplayItemLineItem,
				Price:  surcharge.Round(2).StringFixed(2),
				Status: models.TransactionStatusFinal,
			},
		},
		CountryCode:      CountryCode,
		CurrencyCode:     CurrencyCode,
		TotalPriceStatus: models.TransactionStatusFinal,
		TotalPrice:       total.StringFixed(2),
		TotalPriceLabel:  "Total",
	}, nil
}

// Estimate produces the initial, pre-selection summary shown when the sheet
// first opens. The total carries the ESTIMATED status until the user settles
// on a shipping option.
func Estimate(base decimal.Decimal) (models.TransactionInfo, error) {
	if base.IsNegative() {
		return models.TransactionInfo{}, fmt.Errorf("%w: %s", ErrNegativeBase, base)
	}

	return models.TransactionInfo{
		CountryCode:      CountryCode,
		CurrencyCode:     CurrencyCode,
		TotalPriceStatus: models.TransactionStatusEstimated,
		TotalPrice:       base.Round(2).StringFixed(2),
		TotalPriceLabel:  "Total",
	}, nil
}
