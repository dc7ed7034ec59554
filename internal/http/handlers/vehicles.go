package handlers

import (
	"net/http"

	"querycodec/internal/http/middleware"
	"querycodec/internal/repositories"
	"querycodec/internal/services"

	"github.com/gin-gonic/gin"
)

func vehicleService() services.VehicleService {
	return services.VehicleService{
		Repo:    repositories.VehicleRepository{},
		Queries: queryService(),
	}
}

// GET /api/vehicles?_page=1&_limit=20&_sort=-kilometers&color=white&kilometers=<=20000
func GetVehicles(c *gin.Context) {
	out, err := vehicleService().List(c.Request.Context(), middleware.GetRequestID(c), c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/vehicles/sql
func PreviewVehiclesSQL(c *gin.Context) {
	out, err := vehicleService().Preview(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
