package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/paylens-dev/paylens/internal/classify"
	"github.com/paylens-dev/paylens/internal/model"
)

// Labeler assigns a type label to a transaction record.
type Labeler interface {
	Transaction(txn model.Transaction) string
}

// TypeRow is one row of the per-transaction-type summary.
type TypeRow struct {
	Label        string
	Transactions int // distinct transaction IDs
	Total        decimal.Decimal
	Senders      int // distinct sender IDs
	Receivers    int // distinct receiver IDs
}

// TypeSummary is the classified transaction summary. Invalid rows are
// excluded from Rows but counted so they stay visible.
type TypeSummary struct {
	Rows    []TypeRow
	Invalid int
}

type typeAgg struct {
	txns      map[string]bool
	senders   map[string]bool
	receivers map[string]bool
	total     decimal.Decimal
}

// Transactions classifies every transaction and aggregates per label:
// distinct transaction count, total amount, distinct senders, distinct
// receivers. Rows labeled invalid are tallied separately. Rows are
// sorted by label.
func Transactions(txns []model.Transaction, labeler Labeler) TypeSummary {
	aggs := make(map[string]*typeAgg)
	invalid := 0
	for _, txn := range txns {
		label := labeler.Transaction(txn)
		if label == classify.LabelInvalid {
			invalid++
			continue
		}
		agg, seen := aggs[label]
		if !seen {
			agg = &typeAgg{
				txns:      make(map[string]bool),
				senders:   make(map[string]bool),
				receivers: make(map[string]bool),
				total:     decimal.Zero,
			}
			aggs[label] = agg
		}
		agg.txns[txn.TransactionID] = true
		agg.senders[txn.SenderID] = true
		agg.receivers[txn.ReceiverID] = true
		agg.total = agg.total.Add(txn.Amount)
	}

	rows := make([]TypeRow, 0, len(aggs))
	for label, agg := range aggs {
		rows = append(rows, TypeRow{
			Label:        label,
			Transactions: len(agg.txns),
			Total:        agg.total,
			Senders:      len(agg.senders),
			Receivers:    len(agg.receivers),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })

	return TypeSummary{Rows: rows, Invalid: invalid}
}
