package favorite

import (
	"net/http"

	"starcatalog/internal/middleware"
	"starcatalog/internal/pkg/apierror"
	"starcatalog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает HTTP запросы для избранного
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes регистрирует routes для избранного
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	favorites := r.Group("/favorite")
	{
		favorites.POST("/planet/:id", h.AddPlanet)
		favorites.POST("/people/:id", h.AddPerson)
		favorites.DELETE("/planet/:id", h.RemovePlanet)
		favorites.DELETE("/people/:id", h.RemovePerson)
	}
}

// AddPlanet добавляет планету в избранное текущего пользователя
//
// @Summary Add favorite planet
// @Tags Favorite
// @Produce json
// @Param id path int true "Planet ID"
// @Success 201 {object} FavoriteResponse
// @Router /favorite/planet/{id} [post]
func (h *Handler) AddPlanet(c *gin.Context) {
	userID, planetID, ok := h.params(c)
	if !ok {
		return
	}

	f, err := h.service.AddPlanet(c.Request.Context(), userID, planetID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToFavoriteResponse(f))
}

// AddPerson добавляет персонажа в избранное текущего пользователя
//
// @Summary Add favorite person
// @Tags Favorite
// @Produce json
// @Param id path int true "Person ID"
// @Success 201 {object} FavoriteResponse
// @Router /favorite/people/{id} [post]
func (h *Handler) AddPerson(c *gin.Context) {
	userID, personID, ok := h.params(c)
	if !ok {
		return
	}

	f, err := h.service.AddPerson(c.Request.Context(), userID, personID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToFavoriteResponse(f))
}

// RemovePlanet удаляет планету из избранного
//
// @Summary Remove favorite planet
// @Tags Favorite
// @Param id path int true "Planet ID"
// @Success 204
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /favorite/planet/{id} [delete]
func (h *Handler) RemovePlanet(c *gin.Context) {
	userID, planetID, ok := h.params(c)
	if !ok {
		return
	}

	if err := h.service.RemovePlanet(c.Request.Context(), userID, planetID); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}

// RemovePerson удаляет персонажа из избранного
//
// @Summary Remove favorite person
// @Tags Favorite
// @Param id path int true "Person ID"
// @Success 204
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /favorite/people/{id} [delete]
func (h *Handler) RemovePerson(c *gin.Context) {
	userID, personID, ok := h.params(c)
	if !ok {
		return
	}

	if err := h.service.RemovePerson(c.Request.Context(), userID, personID); err != nil {
		_ = c.Error(err)
		return
	}
	response.NoContent(c)
}

// params reads the caller and the path id. Identity is guaranteed by
// middleware.RequireUser on the route group.
func (h *Handler) params(c *gin.Context) (userID, targetID int64, ok bool) {
	userID, _ = middleware.UserID(c)
	targetID, ok = apierror.PathID(c, "id")
	return userID, targetID, ok
}
