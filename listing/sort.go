package listing

import (
	"cmp"
	"slices"
	"strings"
)

// Column is a sortable table column.
type Column string

const (
	ColumnNone     Column = ""
	ColumnID       Column = "id"
	ColumnProduct  Column = "product"
	ColumnCategory Column = "category"
	ColumnUser     Column = "user"
)

// ParseColumn maps a column name to a Column. Unknown names yield ColumnNone.
func ParseColumn(s string) Column {
	switch c := Column(strings.ToLower(strings.TrimSpace(s))); c {
	case ColumnID, ColumnProduct, ColumnCategory, ColumnUser:
		return c
	}
	return ColumnNone
}

// Order is a sort direction.
type Order int

const (
	Unsorted Order = iota
	Ascending
	Descending
)

// ParseOrder accepts "asc" and "desc"; anything else is Ascending.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Descending
	}
	return Ascending
}

func (o Order) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return "none"
}

// Sort returns a sorted copy of rows. Equal rows keep their relative order.
// Ascending puts rows with a missing category or user last.
func Sort(rows []ProductRow, col Column, order Order) []ProductRow {
	out := slices.Clone(rows)
	if col == ColumnNone || order == Unsorted {
		return out
	}

	compare := comparator(col)
	if order == Descending {
		slices.SortStableFunc(out, func(a, b ProductRow) int { return compare(b, a) })
	} else {
		slices.SortStableFunc(out, compare)
	}
	return out
}

func comparator(col Column) func(a, b ProductRow) int {
	switch col {
	case ColumnID:
		return func(a, b ProductRow) int {
			return cmp.Compare(a.Product.ID, b.Product.ID)
		}
	case ColumnProduct:
		return func(a, b ProductRow) int {
			return strings.Compare(strings.ToLower(a.Product.Name), strings.ToLower(b.Product.Name))
		}
	case ColumnCategory:
		return func(a, b ProductRow) int {
			return compareOptional(a.Category != nil, b.Category != nil, func() int {
				return strings.Compare(strings.ToLower(a.Category.Title), strings.ToLower(b.Category.Title))
			})
		}
	case ColumnUser:
		return func(a, b ProductRow) int {
			return compareOptional(a.User != nil, b.User != nil, func() int {
				return strings.Compare(strings.ToLower(a.User.Name), strings.ToLower(b.User.Name))
			})
		}
	}
	return func(ProductRow, ProductRow) int { return 0 }
}

// compareOptional orders present values before missing ones.
func compareOptional(aOK, bOK bool, both func() int) int {
	switch {
	case aOK && bOK:
		return both()
	case aOK:
		return -1
	case bOK:
		return 1
	}
	return 0
}
