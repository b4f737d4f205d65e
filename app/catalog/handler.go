package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/listing"
	"github.com/mytheresa/product-categories/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type User struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type Product struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Category *Category `json:"category"`
	User     *User     `json:"user"`
}

type RowProvider interface {
	GetRows() ([]listing.ProductRow, error)
	GetRowByID(id uint) (*listing.ProductRow, error)
}

type CatalogHandler struct {
	repo RowProvider
	log  *zap.Logger
}

func NewCatalogHandler(r RowProvider, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
		log:  log,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// Parse pagination query params
	offset := 0
	limit := 100

	if oStr := q.Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := q.Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	// Parse filters
	criteria := listing.Criteria{
		Search: q.Get("search"),
		User:   q.Get("user"),
	}
	for _, cStr := range q["category"] {
		if id, err := strconv.ParseUint(cStr, 10, 64); err == nil {
			criteria.CategoryIDs = append(criteria.CategoryIDs, uint(id))
		}
	}

	column := listing.ParseColumn(q.Get("sort"))
	order := listing.ParseOrder(q.Get("order"))

	rows, err := h.repo.GetRows()
	if err != nil {
		h.log.Error("failed to get products", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	rows = listing.Sort(listing.Filter(rows, criteria), column, order)
	total := len(rows)

	// Apply pagination
	start := min(offset, total)
	end := min(start+limit, total)

	products := make([]Product, 0, end-start)
	for _, row := range rows[start:end] {
		products = append(products, toProduct(row))
	}

	api.OKResponse(w, Response{
		Total:    total,
		Products: products,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "invalid product id")
		return
	}

	row, err := h.repo.GetRowByID(uint(id))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.ErrorResponse(w, http.StatusNotFound, "product not found")
			return
		}
		h.log.Error("failed to get product", zap.Uint64("id", id), zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	api.OKResponse(w, toProduct(*row))
}

func toProduct(row listing.ProductRow) Product {
	p := Product{
		ID:   row.Product.ID,
		Name: row.Product.Name,
	}
	if row.Category != nil {
		p.Category = &Category{
			ID:    row.Category.ID,
			Title: row.Category.Title,
			Icon:  row.Category.Icon,
		}
	}
	if row.User != nil {
		p.User = &User{
			ID:   row.User.ID,
			Name: row.User.Name,
			Sex:  string(row.User.Sex),
		}
	}
	return p
}
