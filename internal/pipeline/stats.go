package pipeline

import (
	"sort"

	"github.com/shopspring/decimal"

	"depenses/internal/core"
)

// PayerStat describes the spending of one payer.
type PayerStat struct {
	Payer string
	Sum   core.Money
	Mean  core.Money
	Count int
	Max   core.Money
}

// CategoryStat describes the spending in one category.
type CategoryStat struct {
	Category string
	Sum      core.Money
	Mean     core.Money
	Count    int
}

// PayerStats computes sum, mean, count and max per payer, largest sum first.
func PayerStats(txs []core.Transaction) []PayerStat {
	idx := make(map[string]int)
	var out []PayerStat
	for _, tx := range txs {
		i, ok := idx[tx.Payer]
		if !ok {
			i = len(out)
			idx[tx.Payer] = i
			out = append(out, PayerStat{Payer: tx.Payer, Max: tx.Amount})
		}
		s := &out[i]
		s.Sum = s.Sum.Add(tx.Amount)
		s.Count++
		if tx.Amount.Cents > s.Max.Cents {
			s.Max = tx.Amount
		}
	}
	for i := range out {
		out[i].Mean = mean(out[i].Sum, out[i].Count)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sum.Cents != out[j].Sum.Cents {
			return out[i].Sum.Cents > out[j].Sum.Cents
		}
		return out[i].Payer < out[j].Payer
	})
	return out
}

// CategoryStats computes sum, mean and count per category, largest sum first.
func CategoryStats(txs []core.Transaction) []CategoryStat {
	idx := make(map[string]int)
	var out []CategoryStat
	for _, tx := range txs {
		i, ok := idx[tx.Category]
		if !ok {
			i = len(out)
			idx[tx.Category] = i
			out = append(out, CategoryStat{Category: tx.Category})
		}
		out[i].Sum = out[i].Sum.Add(tx.Amount)
		out[i].Count++
	}
	for i := range out {
		out[i].Mean = mean(out[i].Sum, out[i].Count)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sum.Cents != out[j].Sum.Cents {
			return out[i].Sum.Cents > out[j].Sum.Cents
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Mean returns the average amount of txs.
func Mean(txs []core.Transaction) core.Money {
	var sum core.Money
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return mean(sum, len(txs))
}

func mean(sum core.Money, n int) core.Money {
	if n == 0 {
		return core.Money{}
	}
	return fromDecimal(sum.Decimal().Div(decimal.NewFromInt(int64(n))))
}

// CrossTab is a category by payer table of amounts.
type CrossTab struct {
	Categories []string
	Payers     []string
	Cells      map[string]map[string]core.Money // category -> payer -> amount
}

// Cell returns the amount for a category and payer.
func (c CrossTab) Cell(category, payer string) core.Money {
	return c.Cells[category][payer]
}

// CategoryByPayer builds the category by payer table of txs.
func CategoryByPayer(txs []core.Transaction) CrossTab {
	ct := CrossTab{
		Categories: Categories(txs),
		Payers:     Payers(txs),
		Cells:      make(map[string]map[string]core.Money),
	}
	for _, tx := range txs {
		row, ok := ct.Cells[tx.Category]
		if !ok {
			row = make(map[string]core.Money)
			ct.Cells[tx.Category] = row
		}
		row[tx.Payer] = row[tx.Payer].Add(tx.Amount)
	}
	return ct
}
