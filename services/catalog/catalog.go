package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/ashim-08/Nepali-Thali/lib/myhttpclient"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
)

//go:generate mockgen -source=catalog.go -package catalog -destination catalog_mock.go Catalog
type Catalog interface {
	List(c context.Context) ([]Product, error)
	Get(c context.Context, productUID string) (Product, bool, error)
}

type cachedCatalog struct {
	sync.Mutex
	url      string
	sender   myhttpclient.HTTPSender
	logger   mylog.Logger
	products []Product
}

// NewCatalog fetches the recipes once and keeps them in memory. A failed fetch is retried on the next call.
func NewCatalog(url string, sender myhttpclient.HTTPSender, logger mylog.Logger) Catalog {
	return &cachedCatalog{
		url:    url,
		sender: sender,
		logger: logger,
	}
}

func (cc *cachedCatalog) List(c context.Context) ([]Product, error) {
	cc.Lock()
	defer cc.Unlock()

	if cc.products != nil {
		return cc.products, nil
	}

	products, err := cc.fetch(c)
	if err != nil {
		return nil, err
	}
	cc.products = products

	cc.logger.Log(c, "", mylog.SeverityInfo, "Cached %d products from %s", len(products), cc.url)

	return products, nil
}

func (cc *cachedCatalog) Get(c context.Context, productUID string) (Product, bool, error) {
	products, err := cc.List(c)
	if err != nil {
		return Product{}, false, err
	}

	for _, p := range products {
		if p.UID() == productUID {
			return p, true, nil
		}
	}
	return Product{}, false, nil
}

func (cc *cachedCatalog) fetch(c context.Context) ([]Product, error) {
	httpStatus, respBody, err := cc.sender.Send(c, http.MethodGet, cc.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching catalog: %s", err)
	}
	if httpStatus != http.StatusOK {
		return nil, fmt.Errorf("error fetching catalog: http-status %d", httpStatus)
	}

	resp := recipesResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog response: %s", err)
	}

	if resp.Recipes == nil {
		return []Product{}, nil
	}
	return resp.Recipes, nil
}
