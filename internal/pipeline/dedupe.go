package pipeline

import (
	"strconv"
	"strings"

	"depenses/internal/core"
)

// KeyFunc returns the identity of a transaction for deduplication.
type KeyFunc func(core.Transaction) string

const keySep = "\x1f"

// DefaultKey identifies a transaction by date, amount and payer.
func DefaultKey(tx core.Transaction) string {
	return strings.Join([]string{
		tx.Date.String(),
		strconv.FormatInt(tx.Amount.Cents, 10),
		tx.Payer,
	}, keySep)
}

// KeyWithNotes also compares the free text notes, so two identical
// purchases on the same day with different notes are both kept.
func KeyWithNotes(tx core.Transaction) string {
	return DefaultKey(tx) + keySep + tx.Notes
}

// KeyByName maps a DEDUPE_KEY setting to a KeyFunc.
func KeyByName(name string) KeyFunc {
	if strings.EqualFold(strings.TrimSpace(name), "notes") {
		return KeyWithNotes
	}
	return DefaultKey
}

// Dedupe removes transactions that share DefaultKey with an earlier one.
func Dedupe(txs []core.Transaction) []core.Transaction {
	return DedupeBy(txs, DefaultKey)
}

// DedupeBy keeps the first transaction of every key, preserving order.
// The input slice is not modified.
func DedupeBy(txs []core.Transaction, key KeyFunc) []core.Transaction {
	if key == nil {
		key = DefaultKey
	}
	seen := make(map[string]struct{}, len(txs))
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		k := key(tx)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, tx)
	}
	return out
}
