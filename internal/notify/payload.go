package notify

import (
	"time"

	"github.com/shopspring/decimal"

	"aromashop/internal/domain"
)

// OrderPayload тело, которое получают интеграции
type OrderPayload struct {
	ID        string          `json:"id"`
	Customer  PayloadCustomer `json:"customer"`
	Shipping  PayloadShipping `json:"shipping"`
	Payment   PayloadPayment  `json:"payment"`
	Items     []PayloadItem   `json:"items"`
	OrderDate time.Time       `json:"orderDate"`
}

type PayloadCustomer struct {
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Email         string               `json:"email"`
	Phone         string               `json:"phone"`
	ContactMethod domain.ContactMethod `json:"contactMethod"`
}

type PayloadShipping struct {
	Country         string                 `json:"country"`
	City            string                 `json:"city"`
	DeliveryService domain.DeliveryService `json:"deliveryService"`
	PostalOffice    string                 `json:"postalOffice"`
}

type PayloadPayment struct {
	Method   domain.PaymentMethod `json:"method"`
	Total    decimal.Decimal      `json:"total"`
	Currency string               `json:"currency"`
}

type PayloadItem struct {
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Currency string          `json:"currency"`
}

func NewOrderPayload(o domain.Order) OrderPayload {
	c := o.Customer
	items := make([]PayloadItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, PayloadItem{
			Name:     it.Name,
			Color:    it.Color,
			Price:    it.Price,
			Quantity: it.Quantity,
			Subtotal: it.Subtotal,
			Currency: it.Currency,
		})
	}
	return OrderPayload{
		ID: o.ID,
		Customer: PayloadCustomer{
			FirstName:     c.FirstName,
			LastName:      c.LastName,
			Email:         c.Email,
			Phone:         c.Phone,
			ContactMethod: c.ContactMethod,
		},
		Shipping: PayloadShipping{
			Country:         c.Country,
			City:            c.City,
			DeliveryService: c.DeliveryService,
			PostalOffice:    c.PostalOffice,
		},
		Payment: PayloadPayment{
			Method:   c.PaymentMethod,
			Total:    o.TotalPrice,
			Currency: o.Currency,
		},
		Items:     items,
		OrderDate: o.CreatedAt.UTC(),
	}
}
