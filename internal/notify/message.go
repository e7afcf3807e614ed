package notify

import (
	"fmt"
	"html"
	"strings"
)

const unknownReferrer = "Не вказано"

func bold(v string) string { return "<b>" + html.EscapeString(v) + "</b>" }

// Compose renders msg as Telegram HTML. Every user supplied value is escaped.
func Compose(msg Message) string {
	o := msg.Order
	c := o.Customer
	header := msg.Header
	if header == "" {
		header = "Нове замовлення " + o.ID
	}

	var b strings.Builder
	b.WriteString(bold(header) + "\n")
	fmt.Fprintf(&b, "Імя: %s\n", bold(c.FirstName))
	fmt.Fprintf(&b, "Прізвище: %s\n", bold(c.LastName))
	fmt.Fprintf(&b, "Месенджер: %s\n", bold(string(c.ContactMethod)))
	fmt.Fprintf(&b, "Телефон: %s\n", bold(c.Phone))
	optional := []struct{ label, value string }{
		{"Email", c.Email},
		{"Країна", c.Country},
		{"Місто", c.City},
		{"Доставка", string(c.DeliveryService)},
		{"Відділення", c.PostalOffice},
		{"Оплата", string(c.PaymentMethod)},
	}
	for _, f := range optional {
		if strings.TrimSpace(f.value) != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.label, bold(f.value))
		}
	}
	ref := strings.TrimSpace(msg.Referrer)
	if ref == "" {
		ref = unknownReferrer
	}
	fmt.Fprintf(&b, "Url: %s\n", bold(ref))

	if len(o.Items) > 0 {
		b.WriteString("\n<b>Товари:</b>\n")
		for i, it := range o.Items {
			fmt.Fprintf(&b, "%d. Колір: %s, Кількість: %s\n", i+1, bold(it.Color), bold(fmt.Sprint(it.Quantity)))
		}
		fmt.Fprintf(&b, "Сума: %s\n", bold(o.TotalPrice.String()+" "+o.Currency))
	}

	for _, key := range AttributionKeys {
		if v := msg.Attribution[key]; v != "" {
			fmt.Fprintf(&b, "%s %s\n", key, bold(v))
		}
	}
	return b.String()
}
