package model

import "github.com/shopspring/decimal"

// ReserveFIFO picks the earnings that cover amount, oldest first. The input
// must already be sorted by MadeAvailableAt ascending. It returns the rows
// to reserve and whether they cover the amount; accumulation stops at the
// first row that pushes the running total to amount or above.
func ReserveFIFO(earnings []*Earning, amount decimal.Decimal) ([]*Earning, bool) {
	reserved := make([]*Earning, 0, len(earnings))
	total := decimal.Zero
	for _, e := range earnings {
		if e.Status != EarningAvailable {
			continue
		}
		reserved = append(reserved, e)
		total = total.Add(e.WasherEarnings)
		if total.GreaterThanOrEqual(amount) {
			return reserved, true
		}
	}
	return reserved, false
}
