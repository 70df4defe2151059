// Package sales records sales. Stock sufficiency is checked up front (the
// ledger's clamp is only a safety net behind this gate) and all quantity
// mutation is delegated to the ledger; this package never writes stock
// collections itself.
package sales

import (
	"fmt"
	"sync"
	"time"

	"zag-backend/internal/catalog"
	"zag-backend/internal/customers"
	"zag-backend/internal/ledger"
	"zag-backend/internal/models"
	"zag-backend/internal/store"
)

type Service struct {
	mu        sync.Mutex
	st        store.Store
	catalog   *catalog.Service
	ledger    *ledger.Service
	customers *customers.Service
}

func NewService(st store.Store, cat *catalog.Service, led *ledger.Service, cust *customers.Service) *Service {
	return &Service{st: st, catalog: cat, ledger: led, customers: cust}
}

// RecordSale validates and executes one sale: resolves the product and the
// effective unit price (override or selling price), gates on current stock,
// applies the ledger movement, then appends the sale record. The movement
// goes first so a failure in between can never leave a sale without its
// stock consumption.
func (s *Service) RecordSale(productID string, quantity int, unitPriceOverride *float64, customerID string) (models.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return models.Sale{}, &models.ValidationError{Message: "quantity must be at least 1"}
	}

	product, err := s.catalog.Get(productID)
	if err != nil {
		return models.Sale{}, err
	}

	level, err := s.ledger.CurrentLevel(productID)
	if err != nil {
		return models.Sale{}, err
	}
	if level < quantity {
		return models.Sale{}, models.ErrInsufficientStock
	}

	price := product.SellingPrice
	if unitPriceOverride != nil {
		price = *unitPriceOverride
	}

	// Customer snapshot is best effort: an id that no longer resolves just
	// leaves the sale anonymous, it never fails the sale.
	customerName := ""
	if customerID != "" {
		if customer, err := s.customers.Get(customerID); err == nil {
			customerName = customer.FirstName + " " + customer.LastName
		} else {
			customerID = ""
		}
	}

	if _, err := s.ledger.ApplyMovement(productID, models.MovementSale, quantity, fmt.Sprintf("Sale: %d units", quantity)); err != nil {
		return models.Sale{}, err
	}

	sale := models.Sale{
		ID:           models.NewID(),
		ProductID:    productID,
		ProductName:  product.Name,
		CustomerID:   customerID,
		CustomerName: customerName,
		Quantity:     quantity,
		UnitPrice:    price,
		TotalPrice:   price * float64(quantity),
		Profit:       (price - product.PurchasePrice) * float64(quantity),
		CreatedAt:    time.Now(),
	}

	var all []models.Sale
	if err := s.st.Load(store.Sales, &all); err != nil {
		return models.Sale{}, err
	}
	all = append([]models.Sale{sale}, all...)
	if err := s.st.Save(store.Sales, all); err != nil {
		return models.Sale{}, err
	}
	return sale, nil
}

// List returns all sales, newest first.
func (s *Service) List() ([]models.Sale, error) {
	var all []models.Sale
	if err := s.st.Load(store.Sales, &all); err != nil {
		return nil, err
	}
	return all, nil
}
