// Package sitemap serves a listing of the registered routes at "/".
package sitemap

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type Response struct {
	Routes []Route `json:"routes"`
}

type Handler struct {
	routes func() gin.RoutesInfo
}

// NewHandler takes the route source lazily so routes registered after this
// handler still show up.
func NewHandler(routes func() gin.RoutesInfo) *Handler {
	return &Handler{routes: routes}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.GetSitemap)
}

func (h *Handler) GetSitemap(c *gin.Context) {
	c.JSON(http.StatusOK, Build(h.routes()))
}

// Build sorts routes by path, then method.
func Build(info gin.RoutesInfo) Response {
	routes := make([]Route, 0, len(info))
	for _, ri := range info {
		routes = append(routes, Route{Method: ri.Method, Path: ri.Path})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return Response{Routes: routes}
}
