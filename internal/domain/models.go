package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency валюта по умолчанию для позиций без явной валюты
const DefaultCurrency = "UAH"

// CartItem позиция в корзине: пара (товар, цвет) с количеством
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Color    string          `json:"color"`
	ImageURL string          `json:"imageUrl"`
	Currency string          `json:"currency,omitempty"`
}

// Subtotal price × quantity
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CurrencyOrDefault returns the line currency, UAH when unset.
func (i CartItem) CurrencyOrDefault() string {
	if i.Currency == "" {
		return DefaultCurrency
	}
	return i.Currency
}

// ContactMethod предпочтительный канал связи с покупателем
type ContactMethod string

const (
	ContactTelegram ContactMethod = "telegram"
	ContactViber    ContactMethod = "viber"
	ContactWhatsApp ContactMethod = "whatsapp"
	ContactEmail    ContactMethod = "email"
)

func (m ContactMethod) Valid() bool {
	switch m {
	case ContactTelegram, ContactViber, ContactWhatsApp, ContactEmail:
		return true
	}
	return false
}

// PaymentMethod способ оплаты
type PaymentMethod string

const (
	PaymentPrepayment PaymentMethod = "prepayment"
	PaymentCOD        PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentPrepayment || m == PaymentCOD
}

// DeliveryService служба доставки
type DeliveryService string

const (
	DeliveryNovaPoshta DeliveryService = "novaposhta"
	DeliveryUkrPoshta  DeliveryService = "ukrposhta"
)

func (d DeliveryService) Valid() bool {
	return d == DeliveryNovaPoshta || d == DeliveryUkrPoshta
}

// CheckoutData поля формы оформления заказа
type CheckoutData struct {
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Country         string          `json:"country"`
	City            string          `json:"city"`
	DeliveryService DeliveryService `json:"deliveryService"`
	PostalOffice    string          `json:"postalOffice"`
	ContactMethod   ContactMethod   `json:"contactMethod"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
}

// DefaultCheckoutData prefilled values of a fresh checkout form.
func DefaultCheckoutData() CheckoutData {
	return CheckoutData{
		Country:       "ukraine",
		ContactMethod: ContactTelegram,
		PaymentMethod: PaymentPrepayment,
	}
}

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusRejected   OrderStatus = "rejected"
)

// OrderItem позиция заказа, снимок строки корзины на момент оформления
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Currency string          `json:"currency"`
	ImageURL string          `json:"imageUrl,omitempty"`
}

// PaymentDetails реквизиты для передоплаты
type PaymentDetails struct {
	IBAN          string `json:"iban"`
	CardNumber    string `json:"cardNumber"`
	BankName      string `json:"bankName"`
	RecipientName string `json:"recipientName"`
}

// Order сущность заказа. После создания меняются только Status и TrackingNumber.
type Order struct {
	ID             string          `json:"id"`
	CreatedAt      time.Time       `json:"date"`
	Customer       CheckoutData    `json:"customer"`
	Items          []OrderItem     `json:"items"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	Currency       string          `json:"currency"`
	Status         OrderStatus     `json:"status"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
}

// LastOrder снимок последнего заказа для страницы подтверждения
type LastOrder struct {
	Order
	CheckoutData CheckoutData `json:"checkoutData"`
}

// ColorOption вариант цвета товара
type ColorOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProductData карточка единственного товара витрины
type ProductData struct {
	ProductName   string          `json:"productName"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Colors        []ColorOption   `json:"colors"`
	ImageURL      string          `json:"imageUrl"`
	DeliveryInfo  string          `json:"deliveryInfo"`
	GuaranteeInfo string          `json:"guaranteeInfo"`
}

// ColorLabel maps a color value to its display label, the value itself when unknown.
func (p ProductData) ColorLabel(value string) (string, bool) {
	for _, c := range p.Colors {
		if c.Value == value {
			return c.Label, true
		}
	}
	return value, false
}

// IntegrationType тип внешней интеграции для пересылки заказов
type IntegrationType string

const (
	IntegrationSpreadsheetBridge IntegrationType = "spreadsheet-bridge"
	IntegrationGenericWebhook    IntegrationType = "generic-webhook"
)

// Normalize accepts the values older admin panels stored.
func (t IntegrationType) Normalize() IntegrationType {
	switch t {
	case "googleSheets":
		return IntegrationSpreadsheetBridge
	case "webhook":
		return IntegrationGenericWebhook
	}
	return t
}

func (t IntegrationType) Valid() bool {
	switch t.Normalize() {
	case IntegrationSpreadsheetBridge, IntegrationGenericWebhook:
		return true
	}
	return false
}

// IntegrationSettings настройки best-effort интеграции
type IntegrationSettings struct {
	Type    IntegrationType `json:"type"`
	URL     string          `json:"url"`
	Enabled bool            `json:"enabled"`
}

// Messenger ссылка на мессенджер магазина
type Messenger struct {
	Name    string `json:"name"`
	Link    string `json:"link"`
	Enabled bool   `json:"enabled"`
}

// ContactsData контакты магазина (футер и страница подтверждения)
type ContactsData struct {
	Phone      string      `json:"phone,omitempty"`
	Email      string      `json:"email,omitempty"`
	Address    string      `json:"address,omitempty"`
	Messengers []Messenger `json:"messengers"`
}

// EnabledMessengers returns only messengers switched on in the admin panel.
func (c ContactsData) EnabledMessengers() []Messenger {
	out := make([]Messenger, 0, len(c.Messengers))
	for _, m := range c.Messengers {
		if m.Enabled {
			out = append(out, m)
		}
	}
	return out
}
