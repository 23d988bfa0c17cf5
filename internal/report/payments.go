// Package report answers the fixed business questions over the loaded
// datasets. Every function is a pure aggregation from records to rows;
// rendering and persistence live elsewhere.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/paylens-dev/paylens/internal/model"
)

// GroupRow is one row of the per-payment-group report.
type GroupRow struct {
	Group model.PaymentGroup
	Count int
	Total decimal.Decimal
}

// Groups aggregates payment reports per payment_group, in order of
// first appearance.
func Groups(reports []model.PaymentReport) []GroupRow {
	totals := make(map[model.PaymentGroup]*GroupRow)
	var order []model.PaymentGroup
	for _, r := range reports {
		row, seen := totals[r.Group]
		if !seen {
			row = &GroupRow{Group: r.Group, Total: decimal.Zero}
			totals[r.Group] = row
			order = append(order, r.Group)
		}
		row.Count++
		row.Total = row.Total.Add(r.Amount)
	}

	rows := make([]GroupRow, 0, len(order))
	for _, g := range order {
		rows = append(rows, *totals[g])
	}
	return rows
}

// RefundShare returns the refund amount as a percentage of the total
// payment amount, rounded to two decimal places. An empty or zero-total
// dataset yields zero.
func RefundShare(reports []model.PaymentReport) decimal.Decimal {
	total := decimal.Zero
	refund := decimal.Zero
	for _, r := range reports {
		total = total.Add(r.Amount)
		if r.Group == model.GroupRefund {
			refund = refund.Add(r.Amount)
		}
	}
	if total.IsZero() {
		return decimal.Zero
	}
	return refund.Mul(decimal.NewFromInt(100)).Div(total).Round(2)
}

// SourceRow is one row of the per-source report.
type SourceRow struct {
	SourceID string
	Count    int
	Total    decimal.Decimal
}

// Sources aggregates payment reports per source_id, sorted by total
// descending with source ID as the tiebreak.
func Sources(reports []model.PaymentReport) []SourceRow {
	totals := make(map[string]*SourceRow)
	for _, r := range reports {
		row, seen := totals[r.SourceID]
		if !seen {
			row = &SourceRow{SourceID: r.SourceID, Total: decimal.Zero}
			totals[r.SourceID] = row
		}
		row.Count++
		row.Total = row.Total.Add(r.Amount)
	}

	rows := make([]SourceRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].SourceID < rows[j].SourceID
	})
	return rows
}
