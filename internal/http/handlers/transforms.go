package handlers

import (
	"net/http"

	"querycodec/internal/transform"

	"github.com/gin-gonic/gin"
)

type transformRequest struct {
	Text string `json:"text"`
}

// POST /api/transforms/css
func ParseCSSTransform(c *gin.Context) {
	var req transformRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	t, err := transform.ParseCSS(req.Text)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_transform", err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"functions": t.Map(), "order": t.Functions(), "text": t.String()})
}

// POST /api/transforms/svg
func ParseSVGTransform(c *gin.Context) {
	var req transformRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	t, err := transform.ParseSVG(req.Text)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_transform", err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"functions": t.Map(), "order": t.Functions(), "text": t.String()})
}
