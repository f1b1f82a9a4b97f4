package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"academic-calendar-core/pkg/response"
)

// Parse godoc
// @Summary     Parse academic text
// @Description Extracts course codes, keywords and the deadline phrase from a text, and resolves the deadline to a concrete datetime when possible.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resolve(ctx, req.toInput(time.Now()))
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newParseResp(output))
}

// ParseBatch godoc
// @Summary     Parse a batch of academic texts
// @Description Parses up to 100 texts in one call. Each text is processed independently; a text that cannot be parsed yields a degraded result instead of failing the batch.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       body body parseBatchReq true "Texts to parse"
// @Success     200 {object} parseBatchResp
// @Failure     400 {object} response.Resp "Bad Request - empty or oversized batch"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parse/batch [POST]
func (h *handler) ParseBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseBatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ResolveBatch(ctx, req.toInput(time.Now(), h.maxBatchItems))
	if err != nil {
		h.l.Errorf(ctx, "uc.ResolveBatch: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newParseBatchResp(output))
}
