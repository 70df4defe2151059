// Package reports renders sales and stock history as xlsx workbooks for
// offline bookkeeping.
package reports

import (
	"zag-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func BuildSalesWorkbook(sales []models.Sale) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Sales"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := []any{"Date", "Product", "Customer", "Quantity", "Unit Price", "Total", "Profit"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return nil, err
	}
	for i, s := range sales {
		row := []any{
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.ProductName,
			s.CustomerName,
			s.Quantity,
			s.UnitPrice,
			s.TotalPrice,
			s.Profit,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func BuildStockWorkbook(levels []models.StockLevel, entries []models.StockEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	const levelSheet = "Levels"
	if err := f.SetSheetName("Sheet1", levelSheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, levelSheet, 1, []any{"Product", "Quantity"}); err != nil {
		return nil, err
	}
	for i, l := range levels {
		if err := writeRow(f, levelSheet, i+2, []any{l.ProductName, l.Quantity}); err != nil {
			return nil, err
		}
	}

	const historySheet = "History"
	if _, err := f.NewSheet(historySheet); err != nil {
		return nil, err
	}
	header := []any{"Date", "Product", "Type", "Quantity", "Previous", "New", "Notes"}
	if err := writeRow(f, historySheet, 1, header); err != nil {
		return nil, err
	}
	for i, e := range entries {
		row := []any{
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.ProductName,
			string(e.Type),
			e.Quantity,
			e.PreviousQuantity,
			e.NewQuantity,
			e.Notes,
		}
		if err := writeRow(f, historySheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
