package testutils

import (
	"time"

	"garage-backend/internal/database/models"

	"github.com/google/uuid"
)

// CardFactory provides methods to create test Card data
type CardFactory struct{}

// NewCardFactory creates a new CardFactory
func NewCardFactory() *CardFactory {
	return &CardFactory{}
}

// Create creates a test Card with default values and no work items
func (f *CardFactory) Create(tenantID int64) *models.Card {
	return &models.Card{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Vehicle:     defaultVehicle(),
		Km:          120000,
		ModelYili:   2015,
	}
}

// WithWorkItems creates a test Card carrying the given number of work items
func (f *CardFactory) WithWorkItems(tenantID int64, n int) *models.Card {
	card := f.Create(tenantID)
	for i := 0; i < n; i++ {
		card.Yapilanlar = append(card.Yapilanlar, NewWorkItemFactory().Create(tenantID))
	}
	return card
}

// WithPlate sets a custom plate for the card
func (f *CardFactory) WithPlate(tenantID int64, plate string) *models.Card {
	card := f.Create(tenantID)
	card.Plaka = plate
	return card
}

// QuoteFactory provides methods to create test Quote data
type QuoteFactory struct{}

// NewQuoteFactory creates a new QuoteFactory
func NewQuoteFactory() *QuoteFactory {
	return &QuoteFactory{}
}

// Create creates a test Quote with default values
func (f *QuoteFactory) Create(tenantID int64) *models.Quote {
	km := 90000
	year := 2018
	return &models.Quote{
		TenantModel: models.TenantModel{TenantID: tenantID},
		Vehicle:     defaultVehicle(),
		Km:          &km,
		ModelYili:   &year,
	}
}

// WithWorkItems creates a test Quote carrying the given number of work items
func (f *QuoteFactory) WithWorkItems(tenantID int64, n int) *models.Quote {
	quote := f.Create(tenantID)
	for i := 0; i < n; i++ {
		quote.Yapilanlar = append(quote.Yapilanlar, NewWorkItemFactory().Create(tenantID))
	}
	return quote
}

// WorkItemFactory provides methods to create test WorkItem data
type WorkItemFactory struct{}

// NewWorkItemFactory creates a new WorkItemFactory
func NewWorkItemFactory() *WorkItemFactory {
	return &WorkItemFactory{}
}

// Create creates a detached test WorkItem
func (f *WorkItemFactory) Create(tenantID int64) models.WorkItem {
	return models.WorkItem{
		TenantModel: models.TenantModel{TenantID: tenantID},
		BirimAdedi:  2,
		ParcaAdi:    "Fren balatası",
		BirimFiyati: 750,
		ToplamFiyat: 1500,
	}
}

// StockFactory provides methods to create test Stock data
type StockFactory struct{}

// NewStockFactory creates a new StockFactory
func NewStockFactory() *StockFactory {
	return &StockFactory{}
}

// Create creates a test Stock item with default values
func (f *StockFactory) Create(tenantID int64) *models.Stock {
	minLevel := models.DefaultMinStockLevel
	return &models.Stock{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		StokAdi:         "Motor yağı 5W-30",
		Adet:            10,
		Info:            "4 litre",
		EklenisTarihi:   time.Now(),
		MinStokSeviyesi: &minLevel,
	}
}

// WithQuantity creates a test Stock item with a custom quantity
func (f *StockFactory) WithQuantity(tenantID int64, adet int) *models.Stock {
	stock := f.Create(tenantID)
	stock.Adet = adet
	return stock
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique username and tenant
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		TenantID:     int64(id.ID()%90000000) + 10000000,
		Username:     "user-" + id.String()[:8],
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuGQ0Lq8p1hC6Gf8C2Xc1hM5jK6tT8p1u",
		Role:         models.UserRoleUser,
		IsActive:     true,
		FirmaAdi:     "Test Oto Servis",
	}
}

// WithUsername creates a test User with a custom username
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	return user
}

// Admin creates a test User with the admin role
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.Role = models.UserRoleAdmin
	return user
}

// FactorySet provides access to all factories
type FactorySet struct {
	Card     *CardFactory
	Quote    *QuoteFactory
	WorkItem *WorkItemFactory
	Stock    *StockFactory
	User     *UserFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Card:     NewCardFactory(),
		Quote:    NewQuoteFactory(),
		WorkItem: NewWorkItemFactory(),
		Stock:    NewStockFactory(),
		User:     NewUserFactory(),
	}
}

func defaultVehicle() models.Vehicle {
	return models.Vehicle{
		AdSoyad:     "Ahmet Yılmaz",
		TelNo:       "05551234567",
		MarkaModel:  "Renault Clio",
		Plaka:       "34ABC123",
		Sasi:        "VF1RH000000000001",
		Renk:        "Beyaz",
		GirisTarihi: "2024-03-01",
		Notlar:      "Periyodik kontrol",
		Adres:       "İstanbul",
	}
}
