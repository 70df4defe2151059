package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"zag-backend/internal/models"
)

func TestBuildSalesWorkbook(t *testing.T) {
	sales := []models.Sale{
		{
			ProductName:  "Mug",
			CustomerName: "Jane Doe",
			Quantity:     5,
			UnitPrice:    20,
			TotalPrice:   100,
			Profit:       50,
			CreatedAt:    time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC),
		},
		{
			ProductName: "Plate",
			Quantity:    1,
			UnitPrice:   8,
			TotalPrice:  8,
			Profit:      -2,
			CreatedAt:   time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
		},
	}

	f, err := BuildSalesWorkbook(sales)
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	reread, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer reread.Close()

	rows, err := reread.GetRows("Sales")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + one row per sale
	require.Equal(t, "Product", rows[0][1])
	require.Equal(t, "Mug", rows[1][1])
	require.Equal(t, "Jane Doe", rows[1][2])
	require.Equal(t, "Plate", rows[2][1])
}

func TestBuildStockWorkbookSheets(t *testing.T) {
	levels := []models.StockLevel{{ProductID: "p1", ProductName: "Mug", Quantity: 12}}
	entries := []models.StockEntry{{
		ProductName:      "Mug",
		Type:             models.MovementAdd,
		Quantity:         12,
		PreviousQuantity: 0,
		NewQuantity:      12,
		CreatedAt:        time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}}

	f, err := BuildStockWorkbook(levels, entries)
	require.NoError(t, err)

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	reread, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer reread.Close()

	levelRows, err := reread.GetRows("Levels")
	require.NoError(t, err)
	require.Len(t, levelRows, 2)
	require.Equal(t, "Mug", levelRows[1][0])

	historyRows, err := reread.GetRows("History")
	require.NoError(t, err)
	require.Len(t, historyRows, 2)
	require.Equal(t, "add", historyRows[1][2])
}
