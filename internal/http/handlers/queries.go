package handlers

import (
	"net/http"
	"sync"

	"querycodec/internal/query"
	"querycodec/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	queryMu sync.RWMutex
	queries = services.QueryService{Builder: query.NewBuilder(nil)}
)

// SetQueryService installs the codec settings used by every listing handler.
func SetQueryService(s services.QueryService) {
	queryMu.Lock()
	defer queryMu.Unlock()
	queries = s
}

func queryService() services.QueryService {
	queryMu.RLock()
	defer queryMu.RUnlock()
	return queries
}

// GET /api/query/decode?_page=2&_sort=-id&color===red
func DecodeQuery(c *gin.Context) {
	q, err := queryService().Parse(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// POST /api/query/encode
func EncodeQuery(c *gin.Context) {
	var q query.Query
	if !BindJSONOrError(c, &q) {
		return
	}
	for _, f := range q.FilterBy {
		if !f.Operator.Valid() {
			respondError(c, http.StatusBadRequest, "validation_error", "unrecognized operator", gin.H{"field": f.Key, "operator": f.Operator})
			return
		}
	}

	params, raw := queryService().Format(q)
	c.JSON(http.StatusOK, gin.H{"params": params, "query": raw})
}
