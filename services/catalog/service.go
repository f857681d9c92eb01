package catalog

import (
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
)

type service struct {
	catalog Catalog
	logger  mylog.Logger
}

func newService(catalog Catalog, logger mylog.Logger) *service {
	return &service{
		catalog: catalog,
		logger:  logger,
	}
}
