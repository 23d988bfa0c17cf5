package products

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError describes a single catalog invariant violation.
type ValidationError struct {
	ProductID   int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("product %d: %s", e.ProductID, e.Description)
}

// Validate enforces the one-team-per-product invariant: every product
// ID must map to exactly one non-empty team_own value.
func (s *Service) Validate() []ValidationError {
	var errs []ValidationError

	teams := make(map[int]map[string]bool)
	var order []int
	for _, p := range s.products {
		if _, seen := teams[p.ID]; !seen {
			order = append(order, p.ID)
			teams[p.ID] = make(map[string]bool)
		}
		teams[p.ID][p.TeamOwn] = true
	}

	for _, id := range order {
		owned := teams[id]
		if owned[""] {
			errs = append(errs, ValidationError{
				ProductID:   id,
				Description: "missing team_own",
			})
			delete(owned, "")
		}
		if len(owned) > 1 {
			names := make([]string, 0, len(owned))
			for team := range owned {
				names = append(names, team)
			}
			sort.Strings(names)
			errs = append(errs, ValidationError{
				ProductID:   id,
				Description: fmt.Sprintf("owned by %d teams (%s)", len(names), strings.Join(names, ", ")),
			})
		}
	}

	return errs
}
