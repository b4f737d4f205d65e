package listing

import "slices"

// NoMatchesMessage is shown instead of the table when no row is visible.
const NoMatchesMessage = "No products matching selected criteria"

// State is the view state of one catalog session. It is not safe for
// concurrent use.
//
// Selecting a user or category recomputes the visible rows from the base
// rows. The search text is applied on top of the visible rows every time
// Rows is called and never folded into them.
type State struct {
	base    []ProductRow
	visible []ProductRow

	selectedUser string
	searchText   string
	categoryIDs  []uint

	sortColumn Column
	sortOrder  Order
}

// NewState starts a session over the joined base rows.
func NewState(base []ProductRow) *State {
	return &State{
		base:         base,
		visible:      base,
		selectedUser: AllUsers,
	}
}

func (s *State) SelectedUser() string { return s.selectedUser }
func (s *State) SearchText() string   { return s.searchText }
func (s *State) SortColumn() Column   { return s.sortColumn }
func (s *State) SortOrder() Order     { return s.sortOrder }

// SelectedCategories returns the category filter in ascending id order.
func (s *State) SelectedCategories() []uint {
	return slices.Clone(s.categoryIDs)
}

// CategorySelected reports whether id is part of the category filter.
func (s *State) CategorySelected(id uint) bool {
	return slices.Contains(s.categoryIDs, id)
}

// SelectUser narrows the visible rows to the named user's products.
func (s *State) SelectUser(name string) {
	s.selectedUser = name
	s.narrow()
}

// SelectAllUsers drops the user restriction.
func (s *State) SelectAllUsers() {
	s.SelectUser(AllUsers)
}

// SetSearchText changes the live search. The visible rows are not
// recomputed.
func (s *State) SetSearchText(text string) {
	s.searchText = text
}

func (s *State) ClearSearch() {
	s.searchText = ""
}

// ToggleCategory adds id to the category filter, or removes it when it is
// already there.
func (s *State) ToggleCategory(id uint) {
	if i, found := slices.BinarySearch(s.categoryIDs, id); found {
		s.categoryIDs = slices.Delete(s.categoryIDs, i, i+1)
	} else {
		s.categoryIDs = slices.Insert(s.categoryIDs, i, id)
	}
	s.narrow()
}

// SelectAllCategories drops the category restriction.
func (s *State) SelectAllCategories() {
	s.categoryIDs = nil
	s.narrow()
}

// SortBy sorts on col. Repeating the same column cycles ascending,
// descending, then back to the original order.
func (s *State) SortBy(col Column) {
	if col == ColumnNone {
		s.sortColumn, s.sortOrder = ColumnNone, Unsorted
		return
	}
	if col != s.sortColumn {
		s.sortColumn, s.sortOrder = col, Ascending
		return
	}

	switch s.sortOrder {
	case Ascending:
		s.sortOrder = Descending
	default:
		s.sortColumn, s.sortOrder = ColumnNone, Unsorted
	}
}

// Reset restores the initial state.
func (s *State) Reset() {
	s.selectedUser = AllUsers
	s.searchText = ""
	s.categoryIDs = nil
	s.sortColumn, s.sortOrder = ColumnNone, Unsorted
	s.visible = s.base
}

// Visible returns the rows selected by user and category, before search.
func (s *State) Visible() []ProductRow {
	return s.visible
}

// Rows returns the rows to display: the visible rows narrowed by the
// search text, then sorted.
func (s *State) Rows() []ProductRow {
	rows := Filter(s.visible, Criteria{Search: s.searchText})
	return Sort(rows, s.sortColumn, s.sortOrder)
}

// Empty reports whether the table has nothing to show.
func (s *State) Empty() bool {
	return len(s.Rows()) == 0
}

func (s *State) narrow() {
	if (s.selectedUser == AllUsers || s.selectedUser == "") && len(s.categoryIDs) == 0 {
		s.visible = s.base
		return
	}
	s.visible = Filter(s.base, Criteria{User: s.selectedUser, CategoryIDs: s.categoryIDs})
}
