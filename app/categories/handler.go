package categories

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

type CategoryResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Icon    string `json:"icon"`
	OwnerID uint   `json:"owner_id"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
}

type CategoryHandler struct {
	repo CategoryProvider
	log  *zap.Logger
}

func NewCategoryHandler(r CategoryProvider, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{repo: r, log: log}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		h.log.Error("failed to fetch categories", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			ID:      c.ID,
			Title:   c.Title,
			Icon:    c.Icon,
			OwnerID: c.OwnerID,
		}
	}

	api.OKResponse(w, response)
}
