package bootstrap

import (
	"database/sql"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	httpapi "github.com/hydroshield/specbuilder-backend/internal/api/http"
	"github.com/hydroshield/specbuilder-backend/internal/api/http/middleware"
	"github.com/hydroshield/specbuilder-backend/internal/auth"
	"github.com/hydroshield/specbuilder-backend/internal/documents"
	"github.com/hydroshield/specbuilder-backend/internal/projects"
	"github.com/hydroshield/specbuilder-backend/internal/selection"
	"github.com/hydroshield/specbuilder-backend/internal/systems"
	"github.com/hydroshield/specbuilder-backend/internal/users"
	"github.com/hydroshield/specbuilder-backend/internal/wizard"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	SystemsDB   *sql.DB
	Selection   selection.Store
	AuthClient  *fbauth.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.RateLimitMiddleware(rate.Limit(20), 40))

	userRepo := users.NewRepo(dep.DB)
	projectRepo := projects.NewRepo(dep.DB)
	systemRepo := systems.NewRepo(dep.SystemsDB)

	api.Use(auth.WithUser(userRepo, dep.AuthClient))

	selection.Register(api.Group("/selection"), dep.Selection)
	wizard.Register(api.Group("/wizard"), dep.Selection)
	systems.Register(api.Group("/systems"), systemRepo)

	projectsGroup := api.Group("/projects")
	projects.Register(projectsGroup, projectRepo)
	documents.Register(projectsGroup, projectRepo, systemRepo)

	return r
}
