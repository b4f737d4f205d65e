package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	s := NewState(Resolve(catalogTables()))

	assert.Equal(t, AllUsers, s.SelectedUser())
	assert.Equal(t, "", s.SearchText())
	assert.Empty(t, s.SelectedCategories())
	assert.Equal(t, ColumnNone, s.SortColumn())
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6}, productIDs(s.Rows()))
	assert.False(t, s.Empty())
}

func TestStateTransitions(t *testing.T) {
	testCases := []struct {
		name            string
		actions         func(s *State)
		expectedVisible []uint
		expectedRows    []uint
	}{
		{
			name:            "Select user narrows visible rows",
			actions:         func(s *State) { s.SelectUser("Roma") },
			expectedVisible: []uint{1, 3},
			expectedRows:    []uint{1, 3},
		},
		{
			name: "Select all users restores the base rows",
			actions: func(s *State) {
				s.SelectUser("Roma")
				s.SelectAllUsers()
			},
			expectedVisible: []uint{1, 2, 3, 4, 5, 6},
			expectedRows:    []uint{1, 2, 3, 4, 5, 6},
		},
		{
			name:            "Search does not touch visible rows",
			actions:         func(s *State) { s.SetSearchText("ap") },
			expectedVisible: []uint{1, 2, 3, 4, 5, 6},
			expectedRows:    []uint{3, 4, 5},
		},
		{
			name: "Search applies on top of selected user",
			actions: func(s *State) {
				s.SetSearchText("apple")
				s.SelectUser("Roma")
			},
			expectedVisible: []uint{1, 3},
			expectedRows:    []uint{3},
		},
		{
			name: "Clear search",
			actions: func(s *State) {
				s.SetSearchText("milk")
				s.ClearSearch()
			},
			expectedVisible: []uint{1, 2, 3, 4, 5, 6},
			expectedRows:    []uint{1, 2, 3, 4, 5, 6},
		},
		{
			name: "Unknown user empties the table",
			actions: func(s *State) {
				s.SelectUser("Nobody")
			},
			expectedVisible: []uint{},
			expectedRows:    []uint{},
		},
		{
			name: "Category toggles combine with user",
			actions: func(s *State) {
				s.ToggleCategory(2)
				s.ToggleCategory(1)
				s.SelectUser("Anna")
			},
			expectedVisible: []uint{2},
			expectedRows:    []uint{2},
		},
		{
			name: "Toggling twice removes the category",
			actions: func(s *State) {
				s.ToggleCategory(3)
				s.ToggleCategory(3)
			},
			expectedVisible: []uint{1, 2, 3, 4, 5, 6},
			expectedRows:    []uint{1, 2, 3, 4, 5, 6},
		},
		{
			name: "Select all categories",
			actions: func(s *State) {
				s.ToggleCategory(3)
				s.SelectAllCategories()
			},
			expectedVisible: []uint{1, 2, 3, 4, 5, 6},
			expectedRows:    []uint{1, 2, 3, 4, 5, 6},
		},
		{
			name:            "Sort only affects displayed rows",
			actions:         func(s *State) { s.SortBy(ColumnID); s.SortBy(ColumnID) },
			expectedVisible: []uint{1, 2, 3, 4, 5, 6},
			expectedRows:    []uint{6, 5, 4, 3, 2, 1},
		},
		{
			name: "Reset",
			actions: func(s *State) {
				s.SelectUser("Max")
				s.ToggleCategory(1)
				s.SetSearchText("x")
				s.SortBy(ColumnProduct)
				s.Reset()
			},
			expectedVisible: []uint{1, 2, 3, 4, 5, 6},
			expectedRows:    []uint{1, 2, 3, 4, 5, 6},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(Resolve(catalogTables()))

			tc.actions(s)

			assert.Equal(t, tc.expectedVisible, productIDs(s.Visible()))
			assert.Equal(t, tc.expectedRows, productIDs(s.Rows()))
			assert.Equal(t, len(tc.expectedRows) == 0, s.Empty())
		})
	}
}

func TestStateSortCycle(t *testing.T) {
	s := NewState(Resolve(catalogTables()))

	s.SortBy(ColumnUser)
	assert.Equal(t, ColumnUser, s.SortColumn())
	assert.Equal(t, Ascending, s.SortOrder())

	s.SortBy(ColumnUser)
	assert.Equal(t, Descending, s.SortOrder())

	s.SortBy(ColumnUser)
	assert.Equal(t, ColumnNone, s.SortColumn())
	assert.Equal(t, Unsorted, s.SortOrder())

	s.SortBy(ColumnUser)
	s.SortBy(ColumnProduct)
	assert.Equal(t, ColumnProduct, s.SortColumn())
	assert.Equal(t, Ascending, s.SortOrder())
}

func TestStateSelectedCategories(t *testing.T) {
	s := NewState(Resolve(catalogTables()))

	s.ToggleCategory(3)
	s.ToggleCategory(1)

	assert.Equal(t, []uint{1, 3}, s.SelectedCategories())
	assert.True(t, s.CategorySelected(3))
	assert.False(t, s.CategorySelected(2))
}
