package checkout

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ashim-08/Nepali-Thali/lib/mycontext"
	"github.com/ashim-08/Nepali-Thali/lib/myhttp"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/lib/mypublisher"
	"github.com/ashim-08/Nepali-Thali/lib/mytime"
	"github.com/ashim-08/Nepali-Thali/lib/myuuid"
	"github.com/ashim-08/Nepali-Thali/services/cart"
	"github.com/ashim-08/Nepali-Thali/services/checkout/checkoutevents"
)

type webService struct {
	service *service
	uuider  myuuid.UUIDer
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(cfg Config, registry *cart.Registry, pub mypublisher.Publisher, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *webService {
	return &webService{
		service: newService(cfg, registry, pub, nower, uuider, logger),
		uuider:  uuider,
		logger:  logger,
	}
}

func (s webService) CreateTopics(c context.Context) error {
	return s.service.publisher.CreateTopic(c, checkoutevents.TopicName)
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/checkout", s.getSummary()).Methods("GET")
	router.HandleFunc("/api/checkout", s.placeOrder()).Methods("POST")
}

func (s webService) getSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionUID := myhttp.SessionUID(w, r, s.uuider)
		c := mycontext.WithSession(mycontext.ContextFromHTTPRequest(r), sessionUID)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.service.getSummary(c, sessionUID))
	}
}

func (s webService) placeOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionUID := myhttp.SessionUID(w, r, s.uuider)
		c := mycontext.WithSession(mycontext.ContextFromHTTPRequest(r), sessionUID)
		responseWriter := myhttp.NewWriter(s.logger)

		form, err := NewFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		confirmation, err := s.service.placeOrder(c, sessionUID, form)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusCreated, confirmation)
	}
}
