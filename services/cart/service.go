package cart

import (
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/services/catalog"
)

type service struct {
	registry *Registry
	catalog  catalog.Catalog
	logger   mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(registry *Registry, catalog catalog.Catalog, logger mylog.Logger) *service {
	return &service{
		registry: registry,
		catalog:  catalog,
		logger:   logger,
	}
}
