// Package calculator aggregates bill amounts for review screens.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/ElvisGalvez/bill-app/internal/models"
)

var hundred = decimal.NewFromInt(100)

// StatusTotal summarizes the bills sharing one status.
type StatusTotal struct {
	Count  int
	Amount decimal.Decimal // sum of amounts, VAT included
	VAT    decimal.Decimal // VAT portion of Amount, derived from each bill's pct
}

// VATPortion returns the VAT contained in an amount that includes VAT at pct
// percent: amount * pct / (100 + pct), rounded to cents.
func VATPortion(amount decimal.Decimal, pct int) decimal.Decimal {
	if pct <= 0 {
		return decimal.Zero
	}
	p := decimal.NewFromInt(int64(pct))
	return amount.Mul(p).Div(hundred.Add(p)).Round(2)
}

// Totals groups bills by status. Statuses outside the known set get their
// own entry.
func Totals(bills []models.Bill) map[models.BillStatus]StatusTotal {
	totals := make(map[models.BillStatus]StatusTotal)

	for _, bill := range bills {
		pct := bill.Pct
		if pct == 0 {
			pct = models.DefaultPct
		}

		t := totals[bill.Status]
		t.Count++
		t.Amount = t.Amount.Add(bill.Amount)
		t.VAT = t.VAT.Add(VATPortion(bill.Amount, pct))
		totals[bill.Status] = t
	}

	return totals
}
