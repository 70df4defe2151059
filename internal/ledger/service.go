// Package ledger is the single authority for stock quantities. Every change
// goes through ApplyMovement, which updates the level and appends a history
// entry in one locked section; nothing else writes stock_levels or
// stock_entries.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"zag-backend/internal/models"
	"zag-backend/internal/store"
)

type Service struct {
	mu sync.Mutex
	st store.Store
}

func NewService(st store.Store) *Service {
	return &Service{st: st}
}

// ApplyMovement mutates a product's stock level and records the transition.
// add: previous + |quantity|; sale: max(0, previous - |quantity|), the clamp
// being a safety net behind the sales recorder's sufficiency gate; adjust:
// absolute set to quantity.
func (s *Service) ApplyMovement(productID string, typ models.MovementType, quantity int, notes string) (models.StockEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.findProduct(productID)
	if err != nil {
		return models.StockEntry{}, err
	}

	switch typ {
	case models.MovementAdd, models.MovementSale:
	case models.MovementAdjust:
		if quantity < 0 {
			return models.StockEntry{}, &models.ValidationError{Message: "adjust quantity cannot be negative"}
		}
	default:
		return models.StockEntry{}, &models.ValidationError{Message: fmt.Sprintf("unknown movement type %q", typ)}
	}

	var levels []models.StockLevel
	if err := s.st.Load(store.StockLevels, &levels); err != nil {
		return models.StockEntry{}, err
	}

	idx := -1
	previous := 0
	for i, l := range levels {
		if l.ProductID == productID {
			idx = i
			previous = l.Quantity
			break
		}
	}

	var next int
	switch typ {
	case models.MovementAdd:
		next = previous + abs(quantity)
	case models.MovementSale:
		next = previous - abs(quantity)
		if next < 0 {
			next = 0
		}
	case models.MovementAdjust:
		next = quantity
	}

	if idx != -1 {
		levels[idx].Quantity = next
	} else {
		// Defensive: a product whose level row went missing gets one back.
		levels = append(levels, models.StockLevel{
			ProductID:   productID,
			ProductName: product.Name,
			Quantity:    next,
		})
	}

	// Level first, then history. The two writes are one logical transaction;
	// this ordering keeps a failure in between from ever showing a history
	// entry without its level change.
	if err := s.st.Save(store.StockLevels, levels); err != nil {
		return models.StockEntry{}, err
	}

	recorded := abs(quantity)
	if typ == models.MovementAdjust {
		recorded = next
	}
	entry := models.StockEntry{
		ID:               models.NewID(),
		ProductID:        productID,
		ProductName:      product.Name,
		Type:             typ,
		Quantity:         recorded,
		PreviousQuantity: previous,
		NewQuantity:      next,
		Notes:            notes,
		CreatedAt:        time.Now(),
	}

	var entries []models.StockEntry
	if err := s.st.Load(store.StockEntries, &entries); err != nil {
		return models.StockEntry{}, err
	}
	entries = append([]models.StockEntry{entry}, entries...)
	if err := s.st.Save(store.StockEntries, entries); err != nil {
		return models.StockEntry{}, err
	}

	return entry, nil
}

// CurrentLevel returns the on-hand quantity, 0 when no level row exists.
func (s *Service) CurrentLevel(productID string) (int, error) {
	var levels []models.StockLevel
	if err := s.st.Load(store.StockLevels, &levels); err != nil {
		return 0, err
	}
	for _, l := range levels {
		if l.ProductID == productID {
			return l.Quantity, nil
		}
	}
	return 0, nil
}

func (s *Service) Levels() ([]models.StockLevel, error) {
	var levels []models.StockLevel
	if err := s.st.Load(store.StockLevels, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

// History returns all stock entries, newest first.
func (s *Service) History() ([]models.StockEntry, error) {
	var entries []models.StockEntry
	if err := s.st.Load(store.StockEntries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// InitializeStock creates the zero-quantity level row for a new product.
// The catalog calls this on create so the cross-component invariant (exactly
// one level row per product) lives in one place.
func (s *Service) InitializeStock(productID, productName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var levels []models.StockLevel
	if err := s.st.Load(store.StockLevels, &levels); err != nil {
		return err
	}
	for _, l := range levels {
		if l.ProductID == productID {
			return nil
		}
	}
	levels = append(levels, models.StockLevel{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    0,
	})
	return s.st.Save(store.StockLevels, levels)
}

// RenameProduct refreshes the level row's name snapshot. History and sale
// snapshots keep the old name on purpose.
func (s *Service) RenameProduct(productID, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var levels []models.StockLevel
	if err := s.st.Load(store.StockLevels, &levels); err != nil {
		return err
	}
	for i, l := range levels {
		if l.ProductID == productID {
			levels[i].ProductName = newName
			return s.st.Save(store.StockLevels, levels)
		}
	}
	return nil
}

// RemoveStock drops the level row when its product is deleted.
func (s *Service) RemoveStock(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var levels []models.StockLevel
	if err := s.st.Load(store.StockLevels, &levels); err != nil {
		return err
	}
	filtered := levels[:0]
	for _, l := range levels {
		if l.ProductID != productID {
			filtered = append(filtered, l)
		}
	}
	return s.st.Save(store.StockLevels, filtered)
}

func (s *Service) findProduct(productID string) (models.Product, error) {
	var products []models.Product
	if err := s.st.Load(store.Products, &products); err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == productID {
			return p, nil
		}
	}
	return models.Product{}, models.ErrNotFound
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
