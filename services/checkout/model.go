package checkout

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	formcodec "github.com/go-playground/form/v4"
	"github.com/shopspring/decimal"

	"github.com/ashim-08/Nepali-Thali/lib/myerrors"
	"github.com/ashim-08/Nepali-Thali/services/cart"
)

const (
	PaymentMethodCashOnDelivery = "cod"
	PaymentMethodEsewa          = "esewa"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^9\d{9}$`)
)

const (
	maxMultipartMemory = 1 << 20
)

// Form holds the delivery details entered by the customer
type Form struct {
	FullName      string `form:"fullName" json:"fullName"`
	Email         string `form:"email" json:"email"`
	Phone         string `form:"phone" json:"phone"`
	City          string `form:"city" json:"city"`
	Address       string `form:"address" json:"address"`
	Notes         string `form:"notes" json:"notes"`
	PaymentMethod string `form:"paymentMethod" json:"paymentMethod"`
}

// NewFromRequest accepts an url-encoded or multipart form post and a json body
func NewFromRequest(r *http.Request) (Form, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		form := Form{}
		err := json.NewDecoder(r.Body).Decode(&form)
		if err != nil {
			return Form{}, myerrors.NewInvalidInputError(fmt.Errorf("error parsing checkout: %s", err))
		}
		return form, nil
	case "multipart/form-data":
		err := r.ParseMultipartForm(maxMultipartMemory)
		if err != nil {
			return Form{}, myerrors.NewInvalidInputError(err)
		}
		return NewFromValues(r.Form)
	case "application/x-www-form-urlencoded", "":
		err := r.ParseForm()
		if err != nil {
			return Form{}, myerrors.NewInvalidInputError(err)
		}
		return NewFromValues(r.Form)
	default:
		return Form{}, myerrors.NewUnsupportedMediaTypeError(fmt.Errorf("unsupported content-type %s", mediaType))
	}
}

func NewFromValues(values url.Values) (Form, error) {
	form := Form{}
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return form, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	return form, nil
}

func (f Form) ToForm() (url.Values, error) {
	values, err := formcodec.NewEncoder().Encode(f)
	if err != nil {
		return nil, fmt.Errorf("error encoding form: %s", err)
	}

	return values, nil
}

// Validate reports all invalid fields at once
func (f Form) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(f.FullName) == "" {
		fields["fullName"] = "Full name is required"
	}
	if !emailPattern.MatchString(f.Email) {
		fields["email"] = "Invalid email address"
	}
	if !phonePattern.MatchString(f.Phone) {
		fields["phone"] = "Invalid phone number. Should be 10 digits starting with 9"
	}
	if strings.TrimSpace(f.City) == "" {
		fields["city"] = "City is required"
	}
	if strings.TrimSpace(f.Address) == "" {
		fields["address"] = "Address is required"
	}
	switch f.PaymentMethod {
	case "", PaymentMethodCashOnDelivery, PaymentMethodEsewa:
	default:
		fields["paymentMethod"] = fmt.Sprintf("Unsupported payment method %s", f.PaymentMethod)
	}

	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func (f Form) paymentMethod() string {
	if f.PaymentMethod == "" {
		return PaymentMethodCashOnDelivery
	}
	return f.PaymentMethod
}

type ValidationError struct {
	fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := []string{}
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.fields[name]))
	}
	return "invalid checkout: " + strings.Join(parts, ", ")
}

func (e *ValidationError) GetHTTPErrorCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) Details() map[string]string {
	return e.fields
}

type Summary struct {
	TotalItems  int             `json:"totalItems"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}

type Confirmation struct {
	OrderUID      string          `json:"orderUid"`
	CreatedAt     time.Time       `json:"createdAt"`
	FullName      string          `json:"fullName"`
	City          string          `json:"city"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []cart.CartItem `json:"items"`
	Summary
}
