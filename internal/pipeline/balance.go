package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"depenses/internal/core"
)

// PayerShare is what one payer spent and how it compares to the others.
type PayerShare struct {
	Payer  string
	Amount core.Money
	// Share of the total, 0 to 1. Zero when the total is zero.
	Share decimal.Decimal
	// Deviation from the mean of all payers.
	Deviation core.Money
}

// Settlement says who should pay whom to even out a two person household.
type Settlement struct {
	Debtor   string
	Creditor string
	Amount   core.Money
}

// Balance compares the spending of payers over a period.
type Balance struct {
	Total      core.Money
	Mean       core.Money
	Shares     []PayerShare
	Settlement *Settlement
}

// Balanced reports whether there is nothing to settle and every payer
// spent the mean, to the cent.
func (b Balance) Balanced() bool {
	if b.Settlement != nil {
		return false
	}
	for _, sh := range b.Shares {
		if sh.Deviation.Cents != 0 {
			return false
		}
	}
	return true
}

// ComputeBalance derives shares, deviations from the mean and, with exactly
// two payers, the amount the smaller spender owes the larger one (half of
// the difference). Shares are ordered by amount, largest first.
func ComputeBalance(perPayer map[string]core.Money) Balance {
	var b Balance
	if len(perPayer) == 0 {
		return b
	}
	for _, v := range perPayer {
		b.Total = b.Total.Add(v)
	}
	total := b.Total.Decimal()
	mean := total.Div(decimal.NewFromInt(int64(len(perPayer))))
	b.Mean = fromDecimal(mean)

	for _, ca := range core.SortedAmounts(perPayer) {
		share := decimal.Zero
		if !total.IsZero() {
			share = ca.Amount.Decimal().Div(total)
		}
		b.Shares = append(b.Shares, PayerShare{
			Payer:     ca.Name,
			Amount:    ca.Amount,
			Share:     share,
			Deviation: fromDecimal(ca.Amount.Decimal().Sub(mean)),
		})
	}

	if len(b.Shares) == 2 && b.Shares[0].Amount != b.Shares[1].Amount {
		hi, lo := b.Shares[0], b.Shares[1]
		diff := hi.Amount.Decimal().Sub(lo.Amount.Decimal()).Div(decimal.NewFromInt(2))
		b.Settlement = &Settlement{
			Debtor:   lo.Payer,
			Creditor: hi.Payer,
			Amount:   fromDecimal(diff),
		}
	}
	return b
}

// SharePercent formats a share as a percentage with one decimal.
func SharePercent(s decimal.Decimal) string {
	return s.Mul(decimal.NewFromInt(100)).StringFixed(1)
}

func fromDecimal(d decimal.Decimal) core.Money {
	return core.Money{Cents: d.Shift(2).Round(0).IntPart()}
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
