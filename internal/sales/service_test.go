package sales

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zag-backend/internal/catalog"
	"zag-backend/internal/customers"
	"zag-backend/internal/ledger"
	"zag-backend/internal/models"
	"zag-backend/internal/store"
)

type fixture struct {
	sales     *Service
	catalog   *catalog.Service
	customers *customers.Service
	ledger    *ledger.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.NewMemoryStore()
	led := ledger.NewService(st)
	cat := catalog.NewService(st, led)
	cust := customers.NewService(st)
	return &fixture{
		sales:     NewService(st, cat, led, cust),
		catalog:   cat,
		customers: cust,
		ledger:    led,
	}
}

func (f *fixture) createStockedProduct(t *testing.T, name string, purchase, selling float64, stock int) models.Product {
	t.Helper()
	p, err := f.catalog.Create(catalog.CreateProductInput{
		Name:          name,
		PurchasePrice: purchase,
		SellingPrice:  selling,
	})
	require.NoError(t, err)
	if stock > 0 {
		_, err = f.ledger.ApplyMovement(p.ID, models.MovementAdd, stock, "")
		require.NoError(t, err)
	}
	return p
}

func TestRecordSaleAtDefaultPrice(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 50)

	sale, err := f.sales.RecordSale(p.ID, 5, nil, "")
	require.NoError(t, err)

	require.Equal(t, "Mug", sale.ProductName)
	require.Equal(t, 5, sale.Quantity)
	require.Equal(t, 20.0, sale.UnitPrice)
	require.Equal(t, 100.0, sale.TotalPrice)
	require.Equal(t, 50.0, sale.Profit)
	require.Empty(t, sale.CustomerID)

	level, err := f.ledger.CurrentLevel(p.ID)
	require.NoError(t, err)
	require.Equal(t, 45, level)

	entries, err := f.ledger.History()
	require.NoError(t, err)
	require.Equal(t, models.MovementSale, entries[0].Type)
	require.Equal(t, 50, entries[0].PreviousQuantity)
	require.Equal(t, 45, entries[0].NewQuantity)
}

func TestRecordSaleWithPriceOverride(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 10)

	price := 12.5
	sale, err := f.sales.RecordSale(p.ID, 2, &price, "")
	require.NoError(t, err)
	require.Equal(t, 12.5, sale.UnitPrice)
	require.Equal(t, 25.0, sale.TotalPrice)
	require.Equal(t, 5.0, sale.Profit)
}

func TestRecordSaleProfitMayBeNegative(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 10)

	price := 8.0
	sale, err := f.sales.RecordSale(p.ID, 3, &price, "")
	require.NoError(t, err)
	require.Equal(t, -6.0, sale.Profit)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 45)

	_, err := f.sales.RecordSale(p.ID, 100, nil, "")
	require.ErrorIs(t, err, models.ErrInsufficientStock)

	// No partial mutation: level, history and sales are untouched.
	level, err := f.ledger.CurrentLevel(p.ID)
	require.NoError(t, err)
	require.Equal(t, 45, level)

	entries, err := f.ledger.History()
	require.NoError(t, err)
	require.Len(t, entries, 1) // only the initial add

	all, err := f.sales.List()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestRecordSaleExactStockNeverClamps(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 7)

	sale, err := f.sales.RecordSale(p.ID, 7, nil, "")
	require.NoError(t, err)
	require.Equal(t, 7, sale.Quantity)

	level, err := f.ledger.CurrentLevel(p.ID)
	require.NoError(t, err)
	require.Equal(t, 0, level)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	f := newFixture(t)
	_, err := f.sales.RecordSale("missing", 1, nil, "")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestRecordSaleRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 10)

	_, err := f.sales.RecordSale(p.ID, 0, nil, "")
	var val *models.ValidationError
	require.ErrorAs(t, err, &val)
}

func TestRecordSaleCustomerSnapshot(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 10)
	c, err := f.customers.Create(customers.CreateCustomerInput{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "janedoe",
	})
	require.NoError(t, err)

	sale, err := f.sales.RecordSale(p.ID, 1, nil, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, sale.CustomerID)
	require.Equal(t, "Jane Doe", sale.CustomerName)
}

func TestRecordSaleUnresolvableCustomerIsOmitted(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 10)

	sale, err := f.sales.RecordSale(p.ID, 1, nil, "gone")
	require.NoError(t, err)
	require.Empty(t, sale.CustomerID)
	require.Empty(t, sale.CustomerName)
}

func TestSalesListNewestFirst(t *testing.T) {
	f := newFixture(t)
	p := f.createStockedProduct(t, "Mug", 10, 20, 10)

	_, err := f.sales.RecordSale(p.ID, 1, nil, "")
	require.NoError(t, err)
	_, err = f.sales.RecordSale(p.ID, 2, nil, "")
	require.NoError(t, err)

	all, err := f.sales.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, 2, all[0].Quantity)
	require.Equal(t, 1, all[1].Quantity)
}
