package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/paylens-dev/paylens/internal/model"
)

// UnknownTeam is the bucket for payments whose product has no catalog
// entry. Keeping them visible is what makes this a left join rather
// than an inner one.
const UnknownTeam = "(unknown)"

// TeamLookup resolves a product to its owning team.
type TeamLookup interface {
	TeamOf(productID int) (string, bool)
}

// TeamRow is one row of the per-team report.
type TeamRow struct {
	Team  string
	Count int
	Total decimal.Decimal
}

// Teams joins payment reports onto the product catalog by product_id
// and aggregates per owning team, sorted by total descending with team
// name as the tiebreak.
func Teams(reports []model.PaymentReport, catalog TeamLookup) []TeamRow {
	totals := make(map[string]*TeamRow)
	for _, r := range reports {
		team, ok := catalog.TeamOf(r.ProductID)
		if !ok {
			team = UnknownTeam
		}
		row, seen := totals[team]
		if !seen {
			row = &TeamRow{Team: team, Total: decimal.Zero}
			totals[team] = row
		}
		row.Count++
		row.Total = row.Total.Add(r.Amount)
	}

	rows := make([]TeamRow, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Team < rows[j].Team
	})
	return rows
}
