package catalog

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ashim-08/Nepali-Thali/lib/mycontext"
	"github.com/ashim-08/Nepali-Thali/lib/myhttp"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

func NewService(catalog Catalog, logger mylog.Logger) *webService {
	return &webService{
		service: newService(catalog, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/catalog", s.listProducts()).Methods("GET")
	router.HandleFunc("/api/catalog/categories", s.listCategories()).Methods("GET")
	router.HandleFunc("/api/catalog/{productUID}", s.getProduct()).Methods("GET")
}

func (s webService) listProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		category := r.URL.Query().Get("category")
		query := r.URL.Query().Get("q")

		resp, err := s.service.listProducts(c, category, query)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s webService) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		resp, err := s.service.listCategories(c)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s webService) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		product, err := s.service.getProduct(c, productUID)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}
