package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the single parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processParseBatchReq binds and validates the batch parse request body.
func (h *handler) processParseBatchReq(c *gin.Context) (parseBatchReq, error) {
	var req parseBatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
