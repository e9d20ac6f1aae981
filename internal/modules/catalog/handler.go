package catalog

import (
	"net/http"

	"starcatalog/internal/pkg/apierror"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/people", h.GetPeople)      // GET /people
	r.GET("/people/:id", h.GetPerson)  // GET /people/:id
	r.GET("/planets", h.GetPlanets)    // GET /planets
	r.GET("/planets/:id", h.GetPlanet) // GET /planets/:id
}

// GetPeople returns every person.
//
// @Summary List people
// @Tags Catalog
// @Produce json
// @Success 200 {array} PersonResponse
// @Router /people [get]
func (h *Handler) GetPeople(c *gin.Context) {
	people, err := h.service.ListPeople(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPeopleResponse(people))
}

// GetPerson returns one person.
//
// @Summary Get person
// @Tags Catalog
// @Produce json
// @Param id path int true "Person ID"
// @Success 200 {object} PersonResponse
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /people/{id} [get]
func (h *Handler) GetPerson(c *gin.Context) {
	id, ok := apierror.PathID(c, "id")
	if !ok {
		return
	}

	person, err := h.service.GetPerson(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPersonResponse(person))
}

// GetPlanets returns every planet.
//
// @Summary List planets
// @Tags Catalog
// @Produce json
// @Success 200 {array} PlanetResponse
// @Router /planets [get]
func (h *Handler) GetPlanets(c *gin.Context) {
	planets, err := h.service.ListPlanets(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPlanetsResponse(planets))
}

// GetPlanet returns one planet.
//
// @Summary Get planet
// @Tags Catalog
// @Produce json
// @Param id path int true "Planet ID"
// @Success 200 {object} PlanetResponse
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /planets/{id} [get]
func (h *Handler) GetPlanet(c *gin.Context) {
	id, ok := apierror.PathID(c, "id")
	if !ok {
		return
	}

	planet, err := h.service.GetPlanet(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToPlanetResponse(planet))
}
