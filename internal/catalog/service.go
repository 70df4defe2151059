// Package catalog owns product records and their pricing. Creating or
// deleting a product also creates or removes its stock level row through the
// ledger, so the two collections cannot drift apart.
package catalog

import (
	"strings"
	"sync"
	"time"

	"zag-backend/internal/ledger"
	"zag-backend/internal/models"
	"zag-backend/internal/store"
)

type Service struct {
	mu     sync.Mutex
	st     store.Store
	ledger *ledger.Service
}

func NewService(st store.Store, ledger *ledger.Service) *Service {
	return &Service{st: st, ledger: ledger}
}

type CreateProductInput struct {
	Name          string
	SKU           string
	PurchasePrice float64
	SellingPrice  float64
	Category      string
	Description   string
}

type UpdateProductInput struct {
	Name          *string
	SKU           *string
	PurchasePrice *float64
	SellingPrice  *float64
	Category      *string
	Description   *string
}

// Create persists a new product and initializes its stock level at 0.
// SKU and name are deliberately not required to be unique.
func (s *Service) Create(in CreateProductInput) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Product{}, &models.ValidationError{Message: "name is required"}
	}

	now := time.Now()
	p := models.Product{
		ID:            models.NewID(),
		Name:          name,
		SKU:           strings.TrimSpace(in.SKU),
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		Category:      strings.TrimSpace(in.Category),
		Description:   strings.TrimSpace(in.Description),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var products []models.Product
	if err := s.st.Load(store.Products, &products); err != nil {
		return models.Product{}, err
	}
	products = append(products, p)
	if err := s.st.Save(store.Products, products); err != nil {
		return models.Product{}, err
	}

	if err := s.ledger.InitializeStock(p.ID, p.Name); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update merges the given fields and refreshes UpdatedAt. A rename propagates
// to the stock level snapshot; history keeps the old name.
func (s *Service) Update(id string, in UpdateProductInput) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	if err := s.st.Load(store.Products, &products); err != nil {
		return models.Product{}, err
	}

	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Product{}, models.ErrNotFound
	}

	renamed := false
	p := products[idx]
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return models.Product{}, &models.ValidationError{Message: "name cannot be empty"}
		}
		renamed = name != p.Name
		p.Name = name
	}
	if in.SKU != nil {
		p.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.PurchasePrice != nil {
		p.PurchasePrice = *in.PurchasePrice
	}
	if in.SellingPrice != nil {
		p.SellingPrice = *in.SellingPrice
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	p.UpdatedAt = time.Now()

	products[idx] = p
	if err := s.st.Save(store.Products, products); err != nil {
		return models.Product{}, err
	}

	if renamed {
		if err := s.ledger.RenameProduct(p.ID, p.Name); err != nil {
			return models.Product{}, err
		}
	}
	return p, nil
}

// Delete removes the product and its stock level row. Historical stock
// entries and sales keep their name snapshots.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	if err := s.st.Load(store.Products, &products); err != nil {
		return err
	}

	filtered := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, p)
	}
	if !found {
		return models.ErrNotFound
	}

	if err := s.st.Save(store.Products, filtered); err != nil {
		return err
	}
	return s.ledger.RemoveStock(id)
}

func (s *Service) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.st.Load(store.Products, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) Get(id string) (models.Product, error) {
	var products []models.Product
	if err := s.st.Load(store.Products, &products); err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, models.ErrNotFound
}
