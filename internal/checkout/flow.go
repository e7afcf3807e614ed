package checkout

import "aromashop/internal/domain"

// Step шаг витрины
type Step string

const (
	StepCart      Step = "cart"
	StepCheckout  Step = "checkout"
	StepConfirmed Step = "confirmed"
)

// Flow cart → checkout → confirmed, with back to cart. While a submit is in flight
// every transition except EndSubmit is refused.
type Flow struct {
	step       Step
	submitting bool
}

func NewFlow() *Flow { return &Flow{step: StepCart} }

func (f *Flow) Step() Step       { return f.step }
func (f *Flow) Submitting() bool { return f.submitting }

// Proceed moves to the checkout form; an empty cart cannot proceed.
func (f *Flow) Proceed(cartEmpty bool) error {
	if f.submitting {
		return domain.ErrSubmitInProgress
	}
	if cartEmpty {
		return domain.ErrEmptyCart
	}
	f.step = StepCheckout
	return nil
}

func (f *Flow) Back() error {
	if f.submitting {
		return domain.ErrSubmitInProgress
	}
	f.step = StepCart
	return nil
}

// BeginSubmit marks a submit in flight. Only one may run at a time.
func (f *Flow) BeginSubmit() error {
	if f.submitting {
		return domain.ErrSubmitInProgress
	}
	if f.step != StepCheckout {
		return domain.ErrWrongStep
	}
	f.submitting = true
	return nil
}

// EndSubmit clears the in-flight mark; ok moves to confirmation, otherwise the form stays.
func (f *Flow) EndSubmit(ok bool) {
	f.submitting = false
	if ok {
		f.step = StepConfirmed
	}
}

// CartEmptied sends an open checkout form back to the empty cart view.
func (f *Flow) CartEmptied() {
	if f.step == StepCheckout && !f.submitting {
		f.step = StepCart
	}
}

// Reset starts a new shopping round after confirmation.
func (f *Flow) Reset() {
	if f.step == StepConfirmed {
		f.step = StepCart
	}
}
