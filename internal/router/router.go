package router

import (
	"net/http"
	"strings"

	"starcatalog/internal/middleware"
	"starcatalog/internal/modules/catalog"
	"starcatalog/internal/modules/favorite"
	"starcatalog/internal/modules/sitemap"
	"starcatalog/internal/modules/user"
	"starcatalog/internal/pkg/response"
	"starcatalog/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Options struct {
	CurrentUserID int64
	CORSOrigins   []string
	AccessLog     bool
}

// New wires repositories, services and handlers over one shared pool.
func New(db *gorm.DB, opts Options) *gin.Engine {
	personRepo := repository.NewPersonRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	catalogHandler := catalog.NewHandler(catalog.NewService(personRepo, planetRepo))
	userHandler := user.NewHandler(user.NewService(userRepo))
	favoriteHandler := favorite.NewHandler(favorite.NewService(favoriteRepo))

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	if opts.AccessLog {
		r.Use(gin.Logger())
	}
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS(opts.CORSOrigins))
	r.Use(middleware.CurrentUser(opts.CurrentUserID))

	r.NoRoute(func(c *gin.Context) {
		response.Message(c, http.StatusNotFound, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.Message(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	sitemap.NewHandler(r.Routes).RegisterRoutes(r)
	catalogHandler.RegisterRoutes(r)

	// routes acting on behalf of the current user
	protected := r.Group("/")
	protected.Use(middleware.RequireUser())
	{
		userHandler.RegisterRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
	}

	return r
}

// StripTrailingSlash makes "/people/" and "/people" resolve to the same route.
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if p := req.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			trimmed := strings.TrimRight(p, "/")
			if trimmed == "" {
				trimmed = "/"
			}
			req.URL.Path = trimmed
			req.URL.RawPath = ""
		}
		next.ServeHTTP(w, req)
	})
}

// Handler is the full HTTP entry point.
func Handler(db *gorm.DB, opts Options) http.Handler {
	return StripTrailingSlash(New(db, opts))
}
