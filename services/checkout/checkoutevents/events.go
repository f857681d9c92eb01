package checkoutevents

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TopicName             = "checkout"
	checkoutCompletedName = TopicName + ".completed"
)

type OrderLine struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type CheckoutCompleted struct {
	OrderUID      string
	SessionUID    string
	CreatedAt     time.Time
	FullName      string
	Email         string
	Phone         string
	City          string
	Address       string
	Notes         string
	PaymentMethod string
	Lines         []OrderLine
	TotalItems    int
	Subtotal      decimal.Decimal
	DeliveryFee   decimal.Decimal
	Total         decimal.Decimal
}

func (e CheckoutCompleted) GetEventTypeName() string {
	return checkoutCompletedName
}

func (e CheckoutCompleted) GetAggregateName() string {
	return e.OrderUID
}
