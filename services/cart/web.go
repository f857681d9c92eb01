package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ashim-08/Nepali-Thali/lib/mycontext"
	"github.com/ashim-08/Nepali-Thali/lib/myerrors"
	"github.com/ashim-08/Nepali-Thali/lib/myhttp"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/lib/myuuid"
	"github.com/ashim-08/Nepali-Thali/services/catalog"
)

type webService struct {
	service *service
	uuider  myuuid.UUIDer
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(registry *Registry, catalog catalog.Catalog, uuider myuuid.UUIDer, logger mylog.Logger) *webService {
	return &webService{
		service: newService(registry, catalog, logger),
		uuider:  uuider,
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/cart", s.getCart()).Methods("GET")
	router.HandleFunc("/api/cart", s.clearCart()).Methods("DELETE")
	router.HandleFunc("/api/cart/items", s.addItem()).Methods("POST")
	router.HandleFunc("/api/cart/products/{productUID}", s.addCatalogProduct()).Methods("POST")
	router.HandleFunc("/api/cart/items/{itemID}", s.removeItem()).Methods("DELETE")
	router.HandleFunc("/api/cart/items/{itemID}/quantity/{quantity}", s.setQuantity()).Methods("PUT")
	router.HandleFunc("/api/cart/items/{itemID}/contains", s.contains()).Methods("GET")
}

// sessionContext resolves the cart session of the caller and issues a cookie for a new one
func (s webService) sessionContext(w http.ResponseWriter, r *http.Request) (context.Context, string) {
	sessionUID := myhttp.SessionUID(w, r, s.uuider)
	return mycontext.WithSession(mycontext.ContextFromHTTPRequest(r), sessionUID), sessionUID
}

func (s webService) getCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, sessionUID := s.sessionContext(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.service.getCart(c, sessionUID))
	}
}

func (s webService) addItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, sessionUID := s.sessionContext(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		product := Product{}
		err := json.NewDecoder(r.Body).Decode(&product)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing product: %s", err)))
			return
		}

		state, err := s.service.addItem(c, sessionUID, product)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, state)
	}
}

func (s webService) addCatalogProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, sessionUID := s.sessionContext(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		state, err := s.service.addCatalogProduct(c, sessionUID, productUID)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, state)
	}
}

func (s webService) removeItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, sessionUID := s.sessionContext(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		itemID := mux.Vars(r)["itemID"]

		responseWriter.Write(c, w, http.StatusOK, s.service.removeItem(c, sessionUID, itemID))
	}
}

func (s webService) setQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, sessionUID := s.sessionContext(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		itemID := mux.Vars(r)["itemID"]
		quantity := mux.Vars(r)["quantity"]

		state, err := s.service.setQuantity(c, sessionUID, itemID, quantity)
		if err != nil {
			responseWriter.WriteError(c, w, 4, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, state)
	}
}

func (s webService) clearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, sessionUID := s.sessionContext(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.service.clear(c, sessionUID))
	}
}

func (s webService) contains() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, sessionUID := s.sessionContext(w, r)
		responseWriter := myhttp.NewWriter(s.logger)

		itemID := mux.Vars(r)["itemID"]

		responseWriter.Write(c, w, http.StatusOK, s.service.contains(c, sessionUID, itemID))
	}
}
