package pricing

import (
	"math"

	"quote-engine/internal/model"
)

const defaultDepositPercent = 50.0

// ApplyMarkupsAndTax layers the contractor's percentage settings onto a base
// pricing. The pipeline is strictly sequential and order-dependent: labor and
// material markups apply independently, overhead applies to their sum, profit
// margin applies to the overhead-inflated sum, tax applies to the resulting
// subtotal. Intermediate arithmetic keeps full precision; rounding to cents
// happens only on the output fields. Balance is total minus deposit, never
// rounded on its own, so deposit plus balance always reproduces the total.
func ApplyMarkupsAndTax(base model.BasePricing, s model.MarkupSettings) model.FinalPricing {
	labor := base.LaborCost * (1 + s.LaborMarkup/100)
	material := base.MaterialCost * (1 + s.MaterialMarkup/100)

	markedUp := labor + material
	overhead := markedUp * s.Overhead / 100
	afterOverhead := markedUp + overhead
	profit := afterOverhead * s.ProfitMargin / 100
	subtotal := afterOverhead + profit

	tax := subtotal * s.TaxRate / 100

	depositPercent := defaultDepositPercent
	if s.DepositPercent != nil {
		depositPercent = *s.DepositPercent
	}

	roundedSubtotal := round2(subtotal)
	roundedTax := round2(tax)
	total := round2(roundedSubtotal + roundedTax)
	deposit := round2(total * depositPercent / 100)

	return model.FinalPricing{
		LaborCost:      round2(labor),
		MaterialCost:   round2(material),
		OverheadAmount: round2(overhead),
		ProfitAmount:   round2(profit),
		Subtotal:       roundedSubtotal,
		TaxAmount:      roundedTax,
		Total:          total,
		Deposit:        deposit,
		Balance:        round2(total - deposit),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
