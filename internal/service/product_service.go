package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"aromashop/internal/domain"
	"aromashop/internal/repository"
)

// ProductService карточка товара и прочие настройки, которые правит админка
type ProductService struct {
	store repository.Store
}

func NewProductService(store repository.Store) *ProductService {
	return &ProductService{store: store}
}

// Sections of page content the admin panel can edit.
var ContentSections = []string{"hero", "features", "description", "gallery", "reviews", "faq", "specs", "contacts"}

var supportedCurrencies = map[string]bool{"UAH": true, "USD": true, "EUR": true}

func DefaultProduct() domain.ProductData {
	return domain.ProductData{
		ProductName: "Тримач для ароматичних паличок",
		Price:       decimal.NewFromInt(899),
		Currency:    domain.DefaultCurrency,
		Colors: []domain.ColorOption{
			{Value: "white", Label: "Білий"},
			{Value: "black", Label: "Чорний"},
			{Value: "blue", Label: "Блакитний"},
			{Value: "beige", Label: "Бежевий"},
		},
		ImageURL:      "/placeholder.svg",
		DeliveryInfo:  "Доставка по всій Україні. Термін доставки: 3-7 робочих днів",
		GuaranteeInfo: "Гарантія повернення грошей протягом 30 днів",
	}
}

func DefaultPaymentDetails() domain.PaymentDetails {
	return domain.PaymentDetails{
		IBAN:          "UA213223130000026007233566001",
		CardNumber:    "5375 4141 0000 0000",
		BankName:      "ПриватБанк",
		RecipientName: "ФОП Иванов Иван Иванович",
	}
}

// Product returns the stored card; blank fields of a partial document keep their defaults.
func (s *ProductService) Product(ctx context.Context) domain.ProductData {
	def := DefaultProduct()
	p := repository.Get(ctx, s.store, repository.KeyProductData, def)
	if strings.TrimSpace(p.ProductName) == "" {
		p.ProductName = def.ProductName
	}
	if !p.Price.IsPositive() {
		p.Price = def.Price
	}
	if p.Currency == "" {
		p.Currency = def.Currency
	}
	if len(p.Colors) == 0 {
		p.Colors = def.Colors
	}
	if p.ImageURL == "" {
		p.ImageURL = def.ImageURL
	}
	if p.DeliveryInfo == "" {
		p.DeliveryInfo = def.DeliveryInfo
	}
	if p.GuaranteeInfo == "" {
		p.GuaranteeInfo = def.GuaranteeInfo
	}
	return p
}

func (s *ProductService) UpdateProduct(ctx context.Context, p domain.ProductData) (*domain.ProductData, error) {
	p.ProductName = strings.TrimSpace(p.ProductName)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.ProductName == "" || !p.Price.IsPositive() {
		return nil, fmt.Errorf("%w: product name and a positive price are required", domain.ErrInvalidInput)
	}
	if !supportedCurrencies[p.Currency] {
		return nil, fmt.Errorf("%w: unsupported currency %q", domain.ErrInvalidInput, p.Currency)
	}
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("%w: at least one color is required", domain.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(p.Colors))
	for i, c := range p.Colors {
		c.Value = strings.TrimSpace(c.Value)
		c.Label = strings.TrimSpace(c.Label)
		if c.Value == "" || c.Label == "" || seen[c.Value] {
			return nil, fmt.Errorf("%w: color %d needs a unique value and a label", domain.ErrInvalidInput, i+1)
		}
		seen[c.Value] = true
		p.Colors[i] = c
	}
	if err := repository.Set(ctx, s.store, repository.KeyProductData, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductService) PaymentDetails(ctx context.Context) domain.PaymentDetails {
	return repository.Get(ctx, s.store, repository.KeyPaymentDetails, DefaultPaymentDetails())
}

func (s *ProductService) UpdatePaymentDetails(ctx context.Context, d domain.PaymentDetails) (*domain.PaymentDetails, error) {
	d.IBAN = strings.ReplaceAll(strings.TrimSpace(d.IBAN), " ", "")
	d.CardNumber = strings.TrimSpace(d.CardNumber)
	d.BankName = strings.TrimSpace(d.BankName)
	d.RecipientName = strings.TrimSpace(d.RecipientName)
	if d.RecipientName == "" || (d.IBAN == "" && d.CardNumber == "") {
		return nil, fmt.Errorf("%w: recipient and an IBAN or card number are required", domain.ErrInvalidInput)
	}
	if err := repository.Set(ctx, s.store, repository.KeyPaymentDetails, d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *ProductService) Integration(ctx context.Context) domain.IntegrationSettings {
	in := repository.Get(ctx, s.store, repository.KeyIntegrationSettings, domain.IntegrationSettings{Type: domain.IntegrationSpreadsheetBridge})
	in.Type = in.Type.Normalize()
	return in
}

// UpdateIntegration stores the settings; an enabled integration needs an absolute http(s) url.
func (s *ProductService) UpdateIntegration(ctx context.Context, in domain.IntegrationSettings) (*domain.IntegrationSettings, error) {
	in.Type = in.Type.Normalize()
	in.URL = strings.TrimSpace(in.URL)
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown integration type %q", domain.ErrInvalidInput, in.Type)
	}
	if in.Enabled || in.URL != "" {
		u, err := url.Parse(in.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: integration url must be an absolute http(s) url", domain.ErrInvalidInput)
		}
	}
	if err := repository.Set(ctx, s.store, repository.KeyIntegrationSettings, in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *ProductService) Contacts(ctx context.Context) domain.ContactsData {
	c := repository.Get(ctx, s.store, repository.KeyContactsData, domain.ContactsData{})
	if c.Messengers == nil {
		c.Messengers = []domain.Messenger{}
	}
	return c
}

func (s *ProductService) UpdateContacts(ctx context.Context, c domain.ContactsData) (*domain.ContactsData, error) {
	if c.Messengers == nil {
		c.Messengers = []domain.Messenger{}
	}
	for i, m := range c.Messengers {
		m.Name = strings.TrimSpace(m.Name)
		m.Link = strings.TrimSpace(m.Link)
		if m.Name == "" || (m.Enabled && m.Link == "") {
			return nil, fmt.Errorf("%w: messenger %d needs a name and, when enabled, a link", domain.ErrInvalidInput, i+1)
		}
		c.Messengers[i] = m
	}
	if err := repository.Set(ctx, s.store, repository.KeyContactsData, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func knownSection(section string) bool {
	for _, s := range ContentSections {
		if s == section {
			return true
		}
	}
	return false
}

// Content returns a page section as stored, `{}` when nothing was saved yet.
func (s *ProductService) Content(ctx context.Context, section string) (json.RawMessage, error) {
	if !knownSection(section) {
		return nil, domain.ErrNotFound
	}
	if section == "contacts" {
		return json.Marshal(s.Contacts(ctx))
	}
	raw, ok := repository.Lookup[json.RawMessage](ctx, s.store, repository.ContentKey(section))
	if !ok {
		return json.RawMessage(`{}`), nil
	}
	return raw, nil
}

// UpdateContent replaces a section. Sections other than contacts are opaque JSON.
func (s *ProductService) UpdateContent(ctx context.Context, section string, raw json.RawMessage) (json.RawMessage, error) {
	if !knownSection(section) {
		return nil, domain.ErrNotFound
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: section body is not valid json", domain.ErrInvalidInput)
	}
	if section == "contacts" {
		var c domain.ContactsData
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		saved, err := s.UpdateContacts(ctx, c)
		if err != nil {
			return nil, err
		}
		return json.Marshal(saved)
	}
	if err := repository.Set(ctx, s.store, repository.ContentKey(section), raw); err != nil {
		return nil, err
	}
	return raw, nil
}
