package api

import (
	"github.com/gin-gonic/gin"
	"github.com/leon37/StudentHub/internal/api/controller"
	"github.com/leon37/StudentHub/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/leon37/StudentHub/docs"
)

// Controllers groups the HTTP handlers wired by RegisterRoutes.
type Controllers struct {
	Auth     *controller.AuthController
	Users    *controller.UserController
	Students *controller.StudentController
	Health   *controller.HealthController
}

// Options switches optional surfaces on. A nil Metrics disables /metrics.
type Options struct {
	Swagger  bool
	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter builds the engine with the global middleware chain and every route.
func NewRouter(ctrls Controllers, verifier middleware.TokenVerifier, opts Options) *gin.Engine {
	controller.UseJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Handler())
	}
	// CORS 放在最后，OPTIONS 预检在任意路径都会被它直接返回
	r.Use(middleware.Cors())

	RegisterRoutes(r, ctrls, verifier, opts)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, ctrls Controllers, verifier middleware.TokenVerifier, opts Options) {
	// 健康检查
	r.GET("/", ctrls.Health.Health)
	r.GET("/health", ctrls.Health.Health)

	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if opts.Metrics != nil && opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	public := r.Group("/api/auth")
	{
		public.POST("/register", ctrls.Auth.Register)
		public.POST("/login", ctrls.Auth.Login)
	}

	// API 组，需要 Bearer Token
	protected := r.Group("/api")
	protected.Use(middleware.JWTAuth(verifier))
	{
		protected.GET("/auth/verify", ctrls.Auth.Verify)
		protected.GET("/users", ctrls.Users.List)

		protected.GET("/students", ctrls.Students.List)
		protected.POST("/students", ctrls.Students.Create)
		protected.GET("/students/search/:query", ctrls.Students.Search)
		protected.GET("/students/:id", ctrls.Students.Get)
		protected.PUT("/students/:id", ctrls.Students.Update)
		protected.DELETE("/students/:id", ctrls.Students.Delete)

		protected.GET("/statistics", ctrls.Students.Statistics)
	}
}
