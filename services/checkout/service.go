package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/lib/mypublisher"
	"github.com/ashim-08/Nepali-Thali/lib/mytime"
	"github.com/ashim-08/Nepali-Thali/lib/myuuid"
	"github.com/ashim-08/Nepali-Thali/services/cart"
)

// Config holds the delivery pricing: orders above FreeDeliveryAbove are delivered for free
type Config struct {
	FreeDeliveryAbove int64
	DeliveryFee       int64
}

type service struct {
	registry          *cart.Registry
	publisher         mypublisher.Publisher
	nower             mytime.Nower
	uuider            myuuid.UUIDer
	logger            mylog.Logger
	freeDeliveryAbove decimal.Decimal
	deliveryFee       decimal.Decimal
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(cfg Config, registry *cart.Registry, pub mypublisher.Publisher, nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	return &service{
		registry:          registry,
		publisher:         pub,
		nower:             nower,
		uuider:            uuider,
		logger:            logger,
		freeDeliveryAbove: decimal.NewFromInt(cfg.FreeDeliveryAbove),
		deliveryFee:       decimal.NewFromInt(cfg.DeliveryFee),
	}
}
