package checkout

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ashim-08/Nepali-Thali/lib/myerrors"
	"github.com/ashim-08/Nepali-Thali/lib/mylog"
	"github.com/ashim-08/Nepali-Thali/services/cart"
	"github.com/ashim-08/Nepali-Thali/services/checkout/checkoutevents"
)

func (s *service) summarize(state cart.CartState) Summary {
	fee := s.deliveryFee
	if state.TotalPrice.GreaterThan(s.freeDeliveryAbove) {
		fee = decimal.Zero
	}

	return Summary{
		TotalItems:  state.TotalItems,
		Subtotal:    state.TotalPrice,
		DeliveryFee: fee,
		Total:       state.TotalPrice.Add(fee),
	}
}

func (s *service) getSummary(c context.Context, sessionUID string) Summary {
	return s.summarize(s.registry.StoreFor(c, sessionUID).State())
}

// placeOrder confirms the order of the cart of the session. The cart is only emptied once
// the checkout.completed event has been published.
func (s *service) placeOrder(c context.Context, sessionUID string, form Form) (Confirmation, error) {
	err := form.Validate()
	if err != nil {
		return Confirmation{}, err
	}

	confirmation := Confirmation{}
	err = s.registry.StoreFor(c, sessionUID).Checkout(c, func(state cart.CartState) error {
		if state.IsEmpty() {
			return myerrors.NewInvalidInputError(fmt.Errorf("Your cart is empty"))
		}

		confirmation = Confirmation{
			OrderUID:      s.uuider.Create(),
			CreatedAt:     s.nower.Now(),
			FullName:      form.FullName,
			City:          form.City,
			Address:       form.Address,
			PaymentMethod: form.paymentMethod(),
			Items:         state.Items,
			Summary:       s.summarize(state),
		}

		err := s.publisher.Publish(c, checkoutevents.TopicName, completedEvent(sessionUID, form, confirmation))
		if err != nil {
			return myerrors.NewUnavailableError(err)
		}
		return nil
	})
	if err != nil {
		return Confirmation{}, err
	}

	s.logger.Log(c, confirmation.OrderUID, mylog.SeverityInfo, "Order %s placed for %d items, total %s (%s)",
		confirmation.OrderUID, confirmation.TotalItems, confirmation.Total, confirmation.PaymentMethod)

	return confirmation, nil
}

func completedEvent(sessionUID string, form Form, confirmation Confirmation) checkoutevents.CheckoutCompleted {
	lines := []checkoutevents.OrderLine{}
	for _, item := range confirmation.Items {
		lines = append(lines, checkoutevents.OrderLine{
			ProductID: item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return checkoutevents.CheckoutCompleted{
		OrderUID:      confirmation.OrderUID,
		SessionUID:    sessionUID,
		CreatedAt:     confirmation.CreatedAt,
		FullName:      form.FullName,
		Email:         form.Email,
		Phone:         form.Phone,
		City:          form.City,
		Address:       form.Address,
		Notes:         form.Notes,
		PaymentMethod: confirmation.PaymentMethod,
		Lines:         lines,
		TotalItems:    confirmation.TotalItems,
		Subtotal:      confirmation.Subtotal,
		DeliveryFee:   confirmation.DeliveryFee,
		Total:         confirmation.Total,
	}
}
