// Package customers owns the customer directory. Usernames are unique
// case-insensitively; so are non-empty emails.
package customers

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"zag-backend/internal/models"
	"zag-backend/internal/store"
)

type Service struct {
	mu sync.Mutex
	st store.Store

	// swapped out in tests to pin the random username fallback
	randInt func(n int) int
}

func NewService(st store.Store) *Service {
	return &Service{st: st, randInt: rand.Intn}
}

type CreateCustomerInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
}

type UpdateCustomerInput struct {
	FirstName *string
	LastName  *string
	Username  *string
	Email     *string
}

func (s *Service) Create(in CreateCustomerInput) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return models.Customer{}, &models.ValidationError{Message: "username is required"}
	}
	email := strings.TrimSpace(in.Email)

	var customers []models.Customer
	if err := s.st.Load(store.Customers, &customers); err != nil {
		return models.Customer{}, err
	}
	if err := checkUniqueness(customers, "", username, email); err != nil {
		return models.Customer{}, err
	}

	now := time.Now()
	c := models.Customer{
		ID:        models.NewID(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	customers = append(customers, c)
	if err := s.st.Save(store.Customers, customers); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (s *Service) Update(id string, in UpdateCustomerInput) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customers []models.Customer
	if err := s.st.Load(store.Customers, &customers); err != nil {
		return models.Customer{}, err
	}

	idx := -1
	for i, c := range customers {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Customer{}, models.ErrNotFound
	}

	c := customers[idx]
	if in.FirstName != nil {
		c.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		c.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Username != nil {
		username := strings.TrimSpace(*in.Username)
		if username == "" {
			return models.Customer{}, &models.ValidationError{Message: "username cannot be empty"}
		}
		c.Username = username
	}
	if in.Email != nil {
		c.Email = strings.TrimSpace(*in.Email)
	}

	// Uniqueness is re-checked against all other customers before applying.
	if err := checkUniqueness(customers, c.ID, c.Username, c.Email); err != nil {
		return models.Customer{}, err
	}

	c.UpdatedAt = time.Now()
	customers[idx] = c
	if err := s.st.Save(store.Customers, customers); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// Delete reports whether a record was actually removed.
func (s *Service) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var customers []models.Customer
	if err := s.st.Load(store.Customers, &customers); err != nil {
		return false, err
	}

	filtered := customers[:0]
	removed := false
	for _, c := range customers {
		if c.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, c)
	}
	if !removed {
		return false, nil
	}
	return true, s.st.Save(store.Customers, filtered)
}

func (s *Service) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.st.Load(store.Customers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Service) Get(id string) (models.Customer, error) {
	var customers []models.Customer
	if err := s.st.Load(store.Customers, &customers); err != nil {
		return models.Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, models.ErrNotFound
}

func checkUniqueness(customers []models.Customer, selfID, username, email string) error {
	for _, other := range customers {
		if other.ID == selfID {
			continue
		}
		if strings.EqualFold(other.Username, username) {
			return &models.DuplicateKeyError{Field: "username"}
		}
		if email != "" && other.Email != "" && strings.EqualFold(other.Email, email) {
			return &models.DuplicateKeyError{Field: "email"}
		}
	}
	return nil
}
