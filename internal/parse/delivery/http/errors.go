package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"academic-calendar-core/internal/parse"
	"academic-calendar-core/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Unknown
// errors become an opaque 500 so internal details never leak.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, parse.ErrBatchTooLarge):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
