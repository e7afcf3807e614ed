// Package checkout holds the checkout form rules and the cart/checkout step machine.
package checkout

import (
	"fmt"
	"strings"

	"aromashop/internal/domain"
)

// Variant набор обязательных полей формы
type Variant string

const (
	// VariantBasic имя, фамилия, телефон и канал связи
	VariantBasic Variant = "basic"
	// VariantExtended добавляет доставку и оплату
	VariantExtended Variant = "extended"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantBasic, VariantExtended:
		return v, nil
	case "":
		return VariantExtended, nil
	}
	return "", fmt.Errorf("unknown checkout variant %q", s)
}

// ValidationError lists every field that failed, in form order.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid checkout fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Validate returns nil for a submittable form, otherwise a *ValidationError.
func Validate(v Variant, d domain.CheckoutData) error {
	var bad []string
	if blank(d.FirstName) {
		bad = append(bad, "firstName")
	}
	if blank(d.LastName) {
		bad = append(bad, "lastName")
	}
	if v == VariantExtended && blank(d.Email) {
		bad = append(bad, "email")
	}
	if blank(d.Phone) {
		bad = append(bad, "phone")
	}
	if v == VariantExtended {
		if blank(d.Country) {
			bad = append(bad, "country")
		}
		if blank(d.City) {
			bad = append(bad, "city")
		}
		if !d.DeliveryService.Valid() {
			bad = append(bad, "deliveryService")
		}
		if d.DeliveryService != "" && blank(d.PostalOffice) {
			bad = append(bad, "postalOffice")
		}
	}
	if !d.ContactMethod.Valid() {
		bad = append(bad, "contactMethod")
	}
	if v == VariantExtended && !d.PaymentMethod.Valid() {
		bad = append(bad, "paymentMethod")
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// Normalize trims free-text fields before the data is stored on an order.
func Normalize(d domain.CheckoutData) domain.CheckoutData {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Country = strings.TrimSpace(d.Country)
	d.City = strings.TrimSpace(d.City)
	d.PostalOffice = strings.TrimSpace(d.PostalOffice)
	return d
}
