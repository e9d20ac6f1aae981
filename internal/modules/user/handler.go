package user

import (
	"net/http"

	"starcatalog/internal/middleware"
	"starcatalog/internal/modules/favorite"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		users.GET("", h.GetUsers)
		users.GET("/favorites", h.GetFavorites)
	}
}

// GetUsers returns every user with their favorites.
//
// @Summary List users
// @Tags User
// @Produce json
// @Success 200 {array} UserResponse
// @Router /users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToUsersResponse(users))
}

// GetFavorites returns the favorites of the current user.
// A missing users row for the current identity is answered with 500.
//
// @Summary List current user's favorites
// @Tags User
// @Produce json
// @Success 200 {array} favorite.FavoriteResponse
// @Failure 500 {object} map[string]interface{} "Internal Server Error"
// @Router /users/favorites [get]
func (h *Handler) GetFavorites(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	favorites, err := h.service.Favorites(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, favorite.ToFavoritesResponse(favorites))
}
