package users

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mytheresa/product-categories/app/api"
	"github.com/mytheresa/product-categories/models"
)

type UserResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

type UserProvider interface {
	GetAllUsers() ([]models.User, error)
}

type UserHandler struct {
	repo UserProvider
	log  *zap.Logger
}

func NewUserHandler(r UserProvider, log *zap.Logger) *UserHandler {
	return &UserHandler{repo: r, log: log}
}

// HandleGetAll lists users in table order. They back the user filter, which
// additionally offers "All".
func (h *UserHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.GetAllUsers()
	if err != nil {
		h.log.Error("failed to fetch users", zap.Error(err))
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	response := make([]UserResponse, len(users))
	for i, u := range users {
		response[i] = UserResponse{
			ID:   u.ID,
			Name: u.Name,
			Sex:  string(u.Sex),
		}
	}

	api.OKResponse(w, response)
}
