package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zag-backend/internal/models"
)

func TestMemoryStoreLoadEmpty(t *testing.T) {
	s := NewMemoryStore()

	var products []models.Product
	require.NoError(t, s.Load(Products, &products))
	require.Empty(t, products)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	in := []models.StockLevel{
		{ProductID: "p1", ProductName: "Mug", Quantity: 4},
		{ProductID: "p2", ProductName: "Plate", Quantity: 0},
	}
	require.NoError(t, s.Save(StockLevels, in))

	var out []models.StockLevel
	require.NoError(t, s.Load(StockLevels, &out))
	require.Equal(t, in, out)
}

func TestMemoryStoreLoadReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(StockLevels, []models.StockLevel{{ProductID: "p1", Quantity: 10}}))

	var first []models.StockLevel
	require.NoError(t, s.Load(StockLevels, &first))
	first[0].Quantity = 999

	var second []models.StockLevel
	require.NoError(t, s.Load(StockLevels, &second))
	require.Equal(t, 10, second[0].Quantity)
}
