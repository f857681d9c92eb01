package cart

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity of one line that can be requested
const MaxQuantity = 999

func init() {
	// Prices travel as plain json numbers, like the stored snapshots of the storefront
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is the snapshot of a catalog entry that is handed over when adding to the cart.
// Everything apart from ID and UnitPrice is carried opaquely for display.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Rating      float64         `json:"rating,omitempty"`
	Cuisine     string          `json:"cuisine,omitempty"`
	MealType    []string        `json:"mealType,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Description string          `json:"description,omitempty"`

	// Extra holds the remaining json fields of the product, passed through untouched
	Extra map[string]json.RawMessage `json:"-"`
}

type productFields Product

// quantity is reserved for the cart line
var productKeys = []string{"id", "name", "image", "unitPrice", "rating", "cuisine", "mealType", "tags", "description", "quantity"}

func (p Product) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(productFields(p))
	if err != nil || len(p.Extra) == 0 {
		return data, err
	}

	fields := map[string]json.RawMessage{}
	err = json.Unmarshal(data, &fields)
	if err != nil {
		return nil, err
	}
	for key, value := range p.Extra {
		if !isKey(key, productKeys...) {
			fields[key] = value
		}
	}
	return json.Marshal(fields)
}

func (p *Product) UnmarshalJSON(data []byte) error {
	fields := productFields{}
	err := json.Unmarshal(data, &fields)
	if err != nil {
		return err
	}

	extra := map[string]json.RawMessage{}
	err = json.Unmarshal(data, &extra)
	if err != nil {
		return err
	}
	fields.Extra = withoutKeys(extra, productKeys...)

	*p = Product(fields)
	return nil
}

type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) MarshalJSON() ([]byte, error) {
	data, err := i.Product.MarshalJSON()
	if err != nil {
		return nil, err
	}

	fields := map[string]json.RawMessage{}
	err = json.Unmarshal(data, &fields)
	if err != nil {
		return nil, err
	}
	fields["quantity"] = json.RawMessage(strconv.Itoa(i.Quantity))
	return json.Marshal(fields)
}

func (i *CartItem) UnmarshalJSON(data []byte) error {
	product := Product{}
	err := json.Unmarshal(data, &product)
	if err != nil {
		return err
	}

	quantity := struct {
		Quantity int `json:"quantity"`
	}{}
	err = json.Unmarshal(data, &quantity)
	if err != nil {
		return err
	}

	i.Product = product
	i.Quantity = quantity.Quantity
	return nil
}

// json field names match case-insensitively
func isKey(name string, keys ...string) bool {
	for _, key := range keys {
		if strings.EqualFold(name, key) {
			return true
		}
	}
	return false
}

func withoutKeys(fields map[string]json.RawMessage, keys ...string) map[string]json.RawMessage {
	result := map[string]json.RawMessage{}
	for name, value := range fields {
		if !isKey(name, keys...) {
			result[name] = value
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// LinePrice returns unitPrice x quantity
func (i CartItem) LinePrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CartState struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func EmptyState() CartState {
	return CartState{
		Items:      []CartItem{},
		TotalItems: 0,
		TotalPrice: decimal.Zero,
	}
}

// Copy returns a deep copy that can be handed out without exposing the internal slices
func (s CartState) Copy() CartState {
	items := make([]CartItem, 0, len(s.Items))
	for _, item := range s.Items {
		item.MealType = append([]string(nil), item.MealType...)
		item.Tags = append([]string(nil), item.Tags...)
		if item.Extra != nil {
			extra := make(map[string]json.RawMessage, len(item.Extra))
			for name, value := range item.Extra {
				extra[name] = append(json.RawMessage(nil), value...)
			}
			item.Extra = extra
		}
		items = append(items, item)
	}
	return CartState{
		Items:      items,
		TotalItems: s.TotalItems,
		TotalPrice: s.TotalPrice,
	}
}

func (s CartState) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s CartState) indexOf(id string) int {
	for idx, item := range s.Items {
		if item.ID == id {
			return idx
		}
	}
	return -1
}

func (s CartState) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Validate checks the invariants that every state produced by Reduce satisfies
func (s CartState) Validate() error {
	seen := map[string]bool{}
	totalItems := 0
	totalPrice := decimal.Zero
	for _, item := range s.Items {
		if item.ID == "" {
			return fmt.Errorf("item without id")
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate item %s", item.ID)
		}
		seen[item.ID] = true
		if item.Quantity <= 0 {
			return fmt.Errorf("item %s has quantity %d", item.ID, item.Quantity)
		}
		if totalItems > math.MaxInt-item.Quantity {
			return fmt.Errorf("quantity of item %s overflows totalItems", item.ID)
		}
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(item.LinePrice())
	}
	if totalItems != s.TotalItems {
		return fmt.Errorf("totalItems is %d, items add up to %d", s.TotalItems, totalItems)
	}
	if !totalPrice.Equal(s.TotalPrice) {
		return fmt.Errorf("totalPrice is %s, items add up to %s", s.TotalPrice, totalPrice)
	}
	return nil
}
