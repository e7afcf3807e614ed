package checkout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"aromashop/internal/domain"
)

func validExtended() domain.CheckoutData {
	return domain.CheckoutData{
		FirstName:       "Олена",
		LastName:        "Коваль",
		Email:           "olena@example.com",
		Phone:           "+380991112233",
		Country:         "ukraine",
		City:            "Київ",
		DeliveryService: domain.DeliveryNovaPoshta,
		PostalOffice:    "Відділення №12",
		ContactMethod:   domain.ContactTelegram,
		PaymentMethod:   domain.PaymentPrepayment,
	}
}

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	require.ErrorIs(t, err, domain.ErrValidation)
	return ve.Fields
}

func TestValidate_AllBlank(t *testing.T) {
	err := Validate(VariantBasic, domain.CheckoutData{FirstName: " ", Phone: "\t"})
	require.Equal(t, []string{"firstName", "lastName", "phone", "contactMethod"}, fieldsOf(t, err))

	err = Validate(VariantExtended, domain.CheckoutData{})
	require.Equal(t, []string{
		"firstName", "lastName", "email", "phone", "country", "city",
		"deliveryService", "contactMethod", "paymentMethod",
	}, fieldsOf(t, err))
}

func TestValidate_BasicNeedsOnlyFourFields(t *testing.T) {
	d := domain.CheckoutData{FirstName: "Iryna", LastName: "Bondar", Phone: "0501234567", ContactMethod: domain.ContactViber}
	require.NoError(t, Validate(VariantBasic, d))
	require.Error(t, Validate(VariantExtended, d))
}

func TestValidate_Extended(t *testing.T) {
	require.NoError(t, Validate(VariantExtended, validExtended()))

	d := validExtended()
	d.PostalOffice = "  "
	require.Equal(t, []string{"postalOffice"}, fieldsOf(t, Validate(VariantExtended, d)))

	d = validExtended()
	d.ContactMethod = "pigeon"
	d.PaymentMethod = "barter"
	require.Equal(t, []string{"contactMethod", "paymentMethod"}, fieldsOf(t, Validate(VariantExtended, d)))
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("")
	require.NoError(t, err)
	require.Equal(t, VariantExtended, v)

	v, err = ParseVariant(" Basic ")
	require.NoError(t, err)
	require.Equal(t, VariantBasic, v)

	_, err = ParseVariant("wizard")
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	d := Normalize(domain.CheckoutData{FirstName: "  Taras ", City: " Lviv"})
	require.Equal(t, "Taras", d.FirstName)
	require.Equal(t, "Lviv", d.City)
}

func TestFlow(t *testing.T) {
	f := NewFlow()
	require.Equal(t, StepCart, f.Step())

	require.ErrorIs(t, f.Proceed(true), domain.ErrEmptyCart)
	require.ErrorIs(t, f.BeginSubmit(), domain.ErrWrongStep)

	require.NoError(t, f.Proceed(false))
	require.Equal(t, StepCheckout, f.Step())
	require.NoError(t, f.Back())
	require.Equal(t, StepCart, f.Step())

	require.NoError(t, f.Proceed(false))
	require.NoError(t, f.BeginSubmit())
	require.True(t, f.Submitting())
	require.ErrorIs(t, f.BeginSubmit(), domain.ErrSubmitInProgress)
	require.ErrorIs(t, f.Back(), domain.ErrSubmitInProgress)

	// the in-flight submit keeps the step even if the cart drains meanwhile
	f.CartEmptied()
	require.Equal(t, StepCheckout, f.Step())

	f.EndSubmit(false)
	require.False(t, f.Submitting())
	require.Equal(t, StepCheckout, f.Step())

	require.NoError(t, f.BeginSubmit())
	f.EndSubmit(true)
	require.Equal(t, StepConfirmed, f.Step())

	f.Reset()
	require.Equal(t, StepCart, f.Step())
}

func TestFlow_CartEmptiedReturnsToCart(t *testing.T) {
	f := NewFlow()
	require.NoError(t, f.Proceed(false))
	f.CartEmptied()
	require.Equal(t, StepCart, f.Step())
}
