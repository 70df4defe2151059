package reports

import (
	"zag-backend/internal/httperr"
	"zag-backend/internal/ledger"
	"zag-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Report could not be rendered")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// GET /api/reports/sales.xlsx
func SalesReportHandler(svc *sales.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		all, err := svc.List()
		if err != nil {
			return httperr.From(err, "Sales could not be loaded")
		}
		f, err := BuildSalesWorkbook(all)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be built")
		}
		return sendWorkbook(c, f, "sales.xlsx")
	}
}

// GET /api/reports/stock.xlsx
func StockReportHandler(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		levels, err := svc.Levels()
		if err != nil {
			return httperr.From(err, "Stock levels could not be loaded")
		}
		entries, err := svc.History()
		if err != nil {
			return httperr.From(err, "Stock history could not be loaded")
		}
		f, err := BuildStockWorkbook(levels, entries)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be built")
		}
		return sendWorkbook(c, f, "stock.xlsx")
	}
}
