package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/ashim-08/Nepali-Thali/lib/myconfig"
	"github.com/ashim-08/Nepali-Thali/lib/myhttpclient"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/lib/mypublisher"
	"github.com/ashim-08/Nepali-Thali/lib/mypubsub"
	"github.com/ashim-08/Nepali-Thali/lib/mystore"
	"github.com/ashim-08/Nepali-Thali/lib/mytime"
	"github.com/ashim-08/Nepali-Thali/lib/mytracing"
	"github.com/ashim-08/Nepali-Thali/lib/myuuid"
	"github.com/ashim-08/Nepali-Thali/services/cart"
	"github.com/ashim-08/Nepali-Thali/services/catalog"
	"github.com/ashim-08/Nepali-Thali/services/checkout"
	"github.com/ashim-08/Nepali-Thali/services/warmup"
)

const (
	serviceName = "nepali-thali"
)

func main() {
	c := context.Background()
	logger := mylog.New("main")

	cfg, err := myconfig.Load()
	if err != nil {
		fatal(c, logger, "Error loading config: %s", err)
	}

	shutdownTracing, err := mytracing.Init(c, serviceName, cfg.OtelEndpoint)
	if err != nil {
		fatal(c, logger, "Error initializing tracing: %s", err)
	}
	defer shutdownTracing(c)

	router := mux.NewRouter()
	router.Use(otelmux.Middleware(serviceName))

	snapshotStore, storeCleanup, err := mystore.New[cart.Snapshot](c, cfg)
	if err != nil {
		fatal(c, logger, "Error creating %s cart store: %s", cfg.StoreBackend, err)
	}
	defer storeCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c, cfg)
	if err != nil {
		fatal(c, logger, "Error creating %s pubsub: %s", cfg.PubSubBackend, err)
	}
	defer pubsubCleanup()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}
	publisher := mypublisher.New(pubsub, nower, mylog.New("publisher"))

	catalogSource := catalog.NewCatalog(cfg.CatalogURL, myhttpclient.NewJSONHTTPClient(mylog.New("httpclient")), mylog.New("catalog"))
	registry, err := cart.NewRegistry(cart.NewSnapshotter(snapshotStore), cfg.MaxCarts, mylog.New("cart"))
	if err != nil {
		fatal(c, logger, "Error creating cart registry: %s", err)
	}

	{
		warmupService := warmup.NewService(catalogSource, mylog.New("warmup"))
		warmupService.RegisterEndpoints(c, router)
	}
	{
		catalogService := catalog.NewService(catalogSource, mylog.New("catalog"))
		catalogService.RegisterEndpoints(c, router)
	}
	{
		cartService := cart.NewService(registry, catalogSource, uuider, mylog.New("cart"))
		cartService.RegisterEndpoints(c, router)
	}
	{
		checkoutService := checkout.NewService(checkout.Config{
			FreeDeliveryAbove: cfg.DeliveryFreeAbove,
			DeliveryFee:       cfg.DeliveryFee,
		}, registry, publisher, nower, uuider, mylog.New("checkout"))
		err = checkoutService.CreateTopics(c)
		if err != nil {
			fatal(c, logger, "Error creating checkout topics: %s", err)
		}
		checkoutService.RegisterEndpoints(c, router)
	}

	startWebServerBlocking(c, cfg.Port, router, logger)
}

func startWebServerBlocking(c context.Context, port string, router *mux.Router, logger mylog.Logger) {
	logger.Log(c, "", mylog.SeverityInfo, "Starting webserver on port %s (try http://localhost:%s/api/cart)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		fatal(c, logger, "Error starting webserver on port %s: %s", port, err)
	}
}

func fatal(c context.Context, logger mylog.Logger, format string, args ...any) {
	logger.Log(c, "", mylog.SeverityError, format, args...)
	panic(fmt.Sprintf(format, args...))
}
