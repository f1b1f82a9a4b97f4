package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"academic-calendar-core/internal/parse"
	parseHTTP "academic-calendar-core/internal/parse/delivery/http"
	parseUC "academic-calendar-core/internal/parse/usecase"
	"academic-calendar-core/pkg/dateresolve"
)

// setupParseDomain initializes the parse domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
//
// The parse use case is returned so other domains can reuse it.
func (srv *HTTPServer) setupParseDomain(ctx context.Context, api *gin.RouterGroup) (parse.UseCase, error) {
	resolver, err := dateresolve.NewResolver(srv.parser.Timezone)
	if err != nil {
		srv.l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", srv.parser.Timezone, err)
		resolver, err = dateresolve.NewResolver("UTC")
		if err != nil {
			return nil, err
		}
	}

	uc := parseUC.New(srv.l, resolver, srv.parser.MaxPhraseTokens)

	h := parseHTTP.New(srv.l, uc, srv.parser.MaxBatchItems)

	// Registers /api/v1/parse and /api/v1/parse/batch
	parseHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Parse domain registered")
	return uc, nil
}
