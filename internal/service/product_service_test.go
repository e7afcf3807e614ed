package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"aromashop/internal/domain"
	"aromashop/internal/repository"
)

func setupPS(t *testing.T) (*ProductService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewProductService(store), store
}

func TestProduct_Defaults(t *testing.T) {
	ps, _ := setupPS(t)
	p := ps.Product(context.Background())
	if p.ProductName != "Тримач для ароматичних паличок" || !p.Price.Equal(decimal.NewFromInt(899)) {
		t.Fatalf("unexpected default product %+v", p)
	}
	if len(p.Colors) != 4 || p.Colors[0].Label != "Білий" {
		t.Fatalf("unexpected default colors %+v", p.Colors)
	}
}

func TestProduct_PartialDocumentKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	ps, store := setupPS(t)
	_ = store.Save(ctx, repository.KeyProductData, []byte(`{"productName":"Holder","price":0}`))

	p := ps.Product(ctx)
	if p.ProductName != "Holder" {
		t.Fatalf("stored name lost: %s", p.ProductName)
	}
	if !p.Price.Equal(decimal.NewFromInt(899)) || len(p.Colors) != 4 || p.Currency != "UAH" {
		t.Fatalf("defaults not applied: %+v", p)
	}
}

func TestProduct_Update_Invalid(t *testing.T) {
	ctx := context.Background()
	ps, _ := setupPS(t)
	valid := DefaultProduct()

	cases := []func(p *domain.ProductData){
		func(p *domain.ProductData) { p.ProductName = " " },
		func(p *domain.ProductData) { p.Price = decimal.Zero },
		func(p *domain.ProductData) { p.Currency = "GBP" },
		func(p *domain.ProductData) { p.Colors = nil },
		func(p *domain.ProductData) {
			p.Colors = []domain.ColorOption{{Value: "white", Label: "A"}, {Value: "white", Label: "B"}}
		},
	}
	for i, mutate := range cases {
		p := valid
		p.Colors = append([]domain.ColorOption(nil), valid.Colors...)
		mutate(&p)
		if _, err := ps.UpdateProduct(ctx, p); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: expected invalid input, got %v", i, err)
		}
	}
}

func TestProduct_Update_Get(t *testing.T) {
	ctx := context.Background()
	ps, _ := setupPS(t)
	p := DefaultProduct()
	p.Price = decimal.NewFromInt(999)
	p.Currency = "usd"
	p.Colors = []domain.ColorOption{{Value: " red ", Label: "Червоний"}}

	saved, err := ps.UpdateProduct(ctx, p)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.Currency != "USD" || saved.Colors[0].Value != "red" {
		t.Fatalf("not normalized: %+v", saved)
	}
	got := ps.Product(ctx)
	if !got.Price.Equal(decimal.NewFromInt(999)) || len(got.Colors) != 1 {
		t.Fatalf("not persisted: %+v", got)
	}
}

func TestPaymentDetails(t *testing.T) {
	ctx := context.Background()
	ps, _ := setupPS(t)
	if ps.PaymentDetails(ctx) != DefaultPaymentDetails() {
		t.Fatalf("expected default payment details")
	}
	if _, err := ps.UpdatePaymentDetails(ctx, domain.PaymentDetails{RecipientName: "ФОП"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	saved, err := ps.UpdatePaymentDetails(ctx, domain.PaymentDetails{IBAN: "UA21 3223 1300", RecipientName: " ФОП Коваль "})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.IBAN != "UA2132231300" || saved.RecipientName != "ФОП Коваль" {
		t.Fatalf("not normalized: %+v", saved)
	}
	if ps.PaymentDetails(ctx) != *saved {
		t.Fatalf("not persisted")
	}
}

func TestIntegration(t *testing.T) {
	ctx := context.Background()
	ps, store := setupPS(t)

	if got := ps.Integration(ctx); got.Type != domain.IntegrationSpreadsheetBridge || got.Enabled {
		t.Fatalf("unexpected default %+v", got)
	}
	_ = store.Save(ctx, repository.KeyIntegrationSettings, []byte(`{"type":"webhook","url":"https://x.example","enabled":true}`))
	if got := ps.Integration(ctx); got.Type != domain.IntegrationGenericWebhook {
		t.Fatalf("legacy type not normalized: %+v", got)
	}

	bad := []domain.IntegrationSettings{
		{Type: "ftp", URL: "https://x.example"},
		{Type: domain.IntegrationGenericWebhook, Enabled: true},
		{Type: domain.IntegrationGenericWebhook, URL: "x.example/hook", Enabled: true},
	}
	for _, in := range bad {
		if _, err := ps.UpdateIntegration(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("%+v: expected invalid input, got %v", in, err)
		}
	}
	saved, err := ps.UpdateIntegration(ctx, domain.IntegrationSettings{Type: "googleSheets", URL: " https://script.example/exec ", Enabled: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if saved.Type != domain.IntegrationSpreadsheetBridge || saved.URL != "https://script.example/exec" {
		t.Fatalf("not normalized: %+v", saved)
	}
	// disabled without url is allowed
	if _, err := ps.UpdateIntegration(ctx, domain.IntegrationSettings{Type: domain.IntegrationGenericWebhook}); err != nil {
		t.Fatalf("disabled: %v", err)
	}
}

func TestContent(t *testing.T) {
	ctx := context.Background()
	ps, _ := setupPS(t)

	raw, err := ps.Content(ctx, "faq")
	if err != nil || string(raw) != `{}` {
		t.Fatalf("empty section: %s %v", raw, err)
	}
	if _, err := ps.Content(ctx, "secrets"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := ps.UpdateContent(ctx, "faq", json.RawMessage(`{broken`)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	body := json.RawMessage(`{"items":[{"q":"Матеріал?","a":"Кераміка"}]}`)
	if _, err := ps.UpdateContent(ctx, "faq", body); err != nil {
		t.Fatalf("update: %v", err)
	}
	raw, _ = ps.Content(ctx, "faq")
	var got struct {
		Items []struct{ Q, A string } `json:"items"`
	}
	if err := json.Unmarshal(raw, &got); err != nil || len(got.Items) != 1 || got.Items[0].A != "Кераміка" {
		t.Fatalf("round trip: %s %v", raw, err)
	}
}

func TestContent_ContactsAreTyped(t *testing.T) {
	ctx := context.Background()
	ps, _ := setupPS(t)

	if _, err := ps.UpdateContent(ctx, "contacts", json.RawMessage(`{"messengers":[{"name":"Viber","enabled":true}]}`)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("enabled messenger without link must fail, got %v", err)
	}
	body := json.RawMessage(`{"phone":"+380991112233","messengers":[{"name":"Telegram","link":"https://t.me/shop","enabled":true},{"name":"Viber","link":"","enabled":false}]}`)
	if _, err := ps.UpdateContent(ctx, "contacts", body); err != nil {
		t.Fatalf("update: %v", err)
	}
	c := ps.Contacts(ctx)
	if c.Phone != "+380991112233" || len(c.EnabledMessengers()) != 1 {
		t.Fatalf("unexpected contacts %+v", c)
	}
}
