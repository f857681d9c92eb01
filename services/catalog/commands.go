package catalog

import (
	"context"
	"fmt"

	"github.com/ashim-08/Nepali-Thali/lib/myerrors"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
)

func (s *service) listProducts(c context.Context, category string, query string) (ProductsResponse, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "List products of category '%s' matching '%s'", category, query)

	products, err := s.catalog.List(c)
	if err != nil {
		return ProductsResponse{}, myerrors.NewUnavailableError(err)
	}

	if category == "" {
		category = CategoryAll
	}
	products = Search(FilterByCategory(products, category), query)

	return ProductsResponse{
		Category: category,
		Query:    query,
		Count:    len(products),
		Products: products,
	}, nil
}

func (s *service) listCategories(c context.Context) (CategoriesResponse, error) {
	products, err := s.catalog.List(c)
	if err != nil {
		return CategoriesResponse{}, myerrors.NewUnavailableError(err)
	}

	return CategoriesResponse{
		Categories: AllCategories(products),
	}, nil
}

func (s *service) getProduct(c context.Context, productUID string) (Product, error) {
	s.logger.Log(c, productUID, mylog.SeverityInfo, "Fetch product %s", productUID)

	product, found, err := s.catalog.Get(c, productUID)
	if err != nil {
		return Product{}, myerrors.NewUnavailableError(err)
	}
	if !found {
		return Product{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
	}

	return product, nil
}
