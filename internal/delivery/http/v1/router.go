package v1

import (
	"net/http"

	"project-request-backend/config"
	"project-request-backend/internal/delivery/http/middleware"
	"project-request-backend/internal/delivery/http/response"
	"project-request-backend/internal/delivery/http/web"
	"project-request-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProjectRequestUC domain.ProjectRequestUsecase
	Site             *config.Site
	Config           *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Swagger UI relies on inline scripts, so it stays outside the CSP
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	secured := r.Group("")
	secured.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))

	api := secured.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewProjectRequestHandler(api, deps.ProjectRequestUC, deps.Site.ProjectTypes)

	err := web.NewHandler(secured, web.Page{
		Brand:        deps.Config.BrandName,
		ContactEmail: deps.Config.ContactEmailTo,
		Phone:        deps.Config.BusinessPhone,
		ProjectTypes: deps.Site.ProjectTypes,
		NextSteps:    deps.Site.FormNextSteps,
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}
