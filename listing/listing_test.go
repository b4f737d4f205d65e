package listing

import "github.com/mytheresa/product-categories/models"

// --- Fixtures ---

func scenarioTables() models.Tables {
	return models.Tables{
		Users: []models.User{{ID: 1, Name: "Max", Sex: models.SexMale}},
		Categories: []models.Category{
			{ID: 1, Title: "Fruits", Icon: "🍎", OwnerID: 1},
		},
		Products: []models.Product{
			{ID: 1, Name: "Apple", CategoryID: 1},
			{ID: 2, Name: "Banana", CategoryID: 99},
		},
	}
}

func catalogTables() models.Tables {
	return models.Tables{
		Users: []models.User{
			{ID: 1, Name: "Roma", Sex: models.SexMale},
			{ID: 2, Name: "Anna", Sex: models.SexFemale},
			{ID: 3, Name: "Max", Sex: models.SexMale},
		},
		Categories: []models.Category{
			{ID: 1, Title: "Grocery", Icon: "🍞", OwnerID: 2},
			{ID: 2, Title: "Drinks", Icon: "🍺", OwnerID: 1},
			{ID: 3, Title: "Fruits", Icon: "🍏", OwnerID: 3},
			{ID: 4, Title: "Orphans", Icon: "❓", OwnerID: 42},
		},
		Products: []models.Product{
			{ID: 1, Name: "Milk", CategoryID: 2},
			{ID: 2, Name: "Bread", CategoryID: 1},
			{ID: 3, Name: "apple juice", CategoryID: 2},
			{ID: 4, Name: "Apple", CategoryID: 3},
			{ID: 5, Name: "Grape", CategoryID: 4},
			{ID: 6, Name: "Banana", CategoryID: 99},
		},
	}
}

func productIDs(rows []ProductRow) []uint {
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.Product.ID
	}
	return ids
}
