package customers

import (
	"fmt"
	"strconv"
	"strings"

	"zag-backend/internal/models"
	"zag-backend/internal/store"
)

// SuggestUsername proposes a free username from the given names: first+last
// truncated to 8 characters each, a lone first name truncated to 15, or a
// random customer{n} when no usable name is given. Taken candidates get an
// incrementing numeric suffix; after 1000 attempts the last candidate is
// returned as-is (documented limitation, the caller still gets a value).
func (s *Service) SuggestUsername(firstName, lastName string) (string, error) {
	var customers []models.Customer
	if err := s.st.Load(store.Customers, &customers); err != nil {
		return "", err
	}
	used := make(map[string]bool, len(customers))
	for _, c := range customers {
		used[strings.ToLower(c.Username)] = true
	}

	first := normalizeName(firstName)
	last := normalizeName(lastName)

	var base string
	switch {
	case first != "" && last != "":
		base = truncate(first, 8) + truncate(last, 8)
	case first != "":
		base = truncate(first, 15)
	}

	if base == "" {
		base = fmt.Sprintf("customer%d", s.randInt(10000))
	}
	if !used[base] {
		return base, nil
	}
	return suffixed(base, used), nil
}

func suffixed(base string, used map[string]bool) string {
	candidate := base
	for n := 1; n <= 1000; n++ {
		candidate = base + strconv.Itoa(n)
		if !used[candidate] {
			break
		}
	}
	return candidate
}

// normalizeName lowercases and strips everything but ASCII letters and digits.
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
