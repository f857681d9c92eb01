package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ashim-08/Nepali-Thali/lib/myerrors"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/services/catalog"
)

type ContainsResponse struct {
	ID       string `json:"id"`
	Contains bool   `json:"contains"`
}

func (s *service) getCart(c context.Context, sessionUID string) CartState {
	return s.registry.StoreFor(c, sessionUID).State()
}

func (s *service) addItem(c context.Context, sessionUID string, product Product) (CartState, error) {
	if product.ID == "" {
		return CartState{}, myerrors.NewInvalidInputErrorf("product without id")
	}
	if product.UnitPrice.IsNegative() {
		return CartState{}, myerrors.NewInvalidInputErrorf("product %s has negative price %s", product.ID, product.UnitPrice)
	}

	state := s.registry.StoreFor(c, sessionUID).AddItem(c, product)

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Added %s to cart: %d items, total %s", product.ID, state.TotalItems, state.TotalPrice)

	return state, nil
}

func (s *service) addCatalogProduct(c context.Context, sessionUID string, productUID string) (CartState, error) {
	p, found, err := s.catalog.Get(c, productUID)
	if err != nil {
		return CartState{}, myerrors.NewUnavailableError(err)
	}
	if !found {
		return CartState{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID))
	}

	product, err := productFromCatalog(p)
	if err != nil {
		return CartState{}, myerrors.NewInternalError(err)
	}

	return s.addItem(c, sessionUID, product)
}

func (s *service) removeItem(c context.Context, sessionUID string, itemID string) CartState {
	state, found := s.registry.StoreFor(c, sessionUID).RemoveItem(c, itemID)
	if !found {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Remove of item %s ignored: not in cart", itemID)
		return state
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Removed %s from cart: %d items, total %s", itemID, state.TotalItems, state.TotalPrice)

	return state
}

func (s *service) setQuantity(c context.Context, sessionUID string, itemID string, quantityValue string) (CartState, error) {
	quantity, err := strconv.Atoi(quantityValue)
	if err != nil {
		return CartState{}, myerrors.NewInvalidInputErrorf("invalid quantity %q", quantityValue)
	}
	if quantity > MaxQuantity {
		return CartState{}, myerrors.NewInvalidInputErrorf("quantity %d exceeds maximum of %d", quantity, MaxQuantity)
	}

	state, found := s.registry.StoreFor(c, sessionUID).SetQuantity(c, itemID, quantity)
	if !found {
		s.logger.Log(c, sessionUID, mylog.SeverityWarn, "Quantity change of item %s ignored: not in cart", itemID)
		return state, nil
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Set quantity of %s to %d: %d items, total %s", itemID, quantity, state.TotalItems, state.TotalPrice)

	return state, nil
}

func (s *service) clear(c context.Context, sessionUID string) CartState {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Clear cart")

	return s.registry.StoreFor(c, sessionUID).Clear(c)
}

func (s *service) contains(c context.Context, sessionUID string, itemID string) ContainsResponse {
	return ContainsResponse{
		ID:       itemID,
		Contains: s.registry.StoreFor(c, sessionUID).Contains(itemID),
	}
}

// productFromCatalog keeps the complete recipe, fields the cart does not know end up in Extra
func productFromCatalog(p catalog.Product) (Product, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return Product{}, fmt.Errorf("error marshalling product %d: %s", p.ID, err)
	}

	fields := map[string]any{}
	err = json.Unmarshal(data, &fields)
	if err != nil {
		return Product{}, fmt.Errorf("error unmarshalling product %d: %s", p.ID, err)
	}
	fields["id"] = p.UID()
	fields["unitPrice"] = p.UnitPrice()

	data, err = json.Marshal(fields)
	if err != nil {
		return Product{}, fmt.Errorf("error marshalling product %d: %s", p.ID, err)
	}

	product := Product{}
	err = json.Unmarshal(data, &product)
	if err != nil {
		return Product{}, fmt.Errorf("error converting product %d: %s", p.ID, err)
	}
	return product, nil
}
