package handlers

import (
	"net/http"
	"sync"

	intconfig "querycodec/internal/config"
	intdb "querycodec/internal/db"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := intconfig.Ping(ctx); err != nil {
		respondError(c, http.StatusServiceUnavailable, "database_unavailable", "database not reachable", gin.H{"reason": err.Error()})
		return
	}
	if !intdb.HasTable(ctx, intconfig.DB, "vehicles") {
		respondError(c, http.StatusServiceUnavailable, "schema_missing", "vehicles table not found", nil)
		return
	}
	count, err := intdb.CountRows(ctx, intconfig.DB, "vehicles")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "query_failed", "count vehicles failed", gin.H{"reason": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "vehicles": count})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
