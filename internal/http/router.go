package api

import (
	stdhttp "net/http"

	intconfig "querycodec/internal/config"
	h "querycodec/internal/http/handlers"
	"querycodec/internal/http/middleware"
	"querycodec/internal/query"
	"querycodec/internal/services"
	"querycodec/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QueryServiceFromEnv builds the codec settings shared by listing handlers.
func QueryServiceFromEnv(env intconfig.Env) services.QueryService {
	return services.QueryService{
		Builder: query.NewBuilder(&query.Options{
			PageParamKey:  env.PageParamKey,
			LimitParamKey: env.LimitParamKey,
			SortParamKey:  env.SortParamKey,
		}),
		Decode: query.DecodeOptions{
			DefaultPage:              env.DefaultPage,
			DefaultLimit:             env.DefaultLimit,
			AllowComaSeparatedArrays: env.AllowComaSeparatedArrays,
		},
	}
}

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetQueryService(QueryServiceFromEnv(env))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.L().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	api.Use(middleware.AuthOptional(env.JWTSecret))
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		q := api.Group("/query")
		q.GET("/decode", h.DecodeQuery)
		q.POST("/encode", h.EncodeQuery)

		api.GET("/vehicles", h.GetVehicles)

		transforms := api.Group("/transforms")
		transforms.POST("/css", h.ParseCSSTransform)
		transforms.POST("/svg", h.ParseSVGTransform)

		admin := api.Group("/admin", middleware.RequireRoles("admin"))
		admin.GET("/vehicles/sql", h.PreviewVehiclesSQL)
	}

	h.SetRouter(r)
	return r
}
