package warmup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ashim-08/Nepali-Thali/lib/mycontext"
	"github.com/ashim-08/Nepali-Thali/lib/myerrors"
	"github.com/ashim-08/Nepali-Thali/lib/myhttp"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/services/catalog"
)

type webService struct {
	logger  mylog.Logger
	catalog catalog.Catalog
}

// NewService primes the catalog cache before the instance receives traffic
func NewService(catalog catalog.Catalog, logger mylog.Logger) *webService {
	return &webService{
		logger:  logger,
		catalog: catalog,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		products, err := s.catalog.List(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Successfully processed warmup request: %d products cached", len(products)),
		})
	}
}
