package listing

import (
	"slices"
	"strings"
)

// AllUsers is the user selection that matches every row.
const AllUsers = "All"

// Criteria narrows a row list. The zero value matches everything.
type Criteria struct {
	// Search is matched case-insensitively as a substring of the product name.
	Search string
	// User is an exact user name, or AllUsers / "" for no restriction.
	User string
	// CategoryIDs restricts rows to these categories when non-empty.
	CategoryIDs []uint
}

// Filter returns the rows matching every criterion, in input order.
// The input slice is not modified.
func Filter(rows []ProductRow, c Criteria) []ProductRow {
	query := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]ProductRow, 0, len(rows))
	for _, row := range rows {
		if query != "" && !strings.Contains(strings.ToLower(row.Product.Name), query) {
			continue
		}
		if c.User != "" && c.User != AllUsers {
			if row.User == nil || row.User.Name != c.User {
				continue
			}
		}
		if len(c.CategoryIDs) > 0 {
			if row.Category == nil || !slices.Contains(c.CategoryIDs, row.Category.ID) {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}
