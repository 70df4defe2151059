// Package stats computes read-only rollups from the catalog, ledger and
// sales collections. It never mutates anything.
package stats

import (
	"time"

	"zag-backend/internal/models"
	"zag-backend/internal/store"
)

// Levels below this count as low stock on the dashboard.
const lowStockThreshold = 10

type Service struct {
	st store.Store

	// swapped out in tests to pin window boundaries
	now func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{st: st, now: time.Now}
}

type DashboardStats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalStock    int     `json:"totalStock"`
	LowStockCount int     `json:"lowStockCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalProfit   float64 `json:"totalProfit"`
	TotalSales    int     `json:"totalSales"`
	WeekRevenue   float64 `json:"weekRevenue"`
}

type WindowStats struct {
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

type SalesSummary struct {
	Today WindowStats `json:"today"`
	Week  WindowStats `json:"week"`
	Month WindowStats `json:"month"`
}

func (s *Service) Dashboard() (DashboardStats, error) {
	var products []models.Product
	if err := s.st.Load(store.Products, &products); err != nil {
		return DashboardStats{}, err
	}
	var levels []models.StockLevel
	if err := s.st.Load(store.StockLevels, &levels); err != nil {
		return DashboardStats{}, err
	}
	var sales []models.Sale
	if err := s.st.Load(store.Sales, &sales); err != nil {
		return DashboardStats{}, err
	}

	out := DashboardStats{
		TotalProducts: len(products),
		TotalSales:    len(sales),
	}
	for _, l := range levels {
		out.TotalStock += l.Quantity
		if l.Quantity < lowStockThreshold {
			out.LowStockCount++
		}
	}

	weekAgo := s.now().AddDate(0, 0, -7)
	for _, sale := range sales {
		out.TotalRevenue += sale.TotalPrice
		out.TotalProfit += sale.Profit
		if !sale.CreatedAt.Before(weekAgo) {
			out.WeekRevenue += sale.TotalPrice
		}
	}
	return out, nil
}

// Summary reports revenue and profit for today (since the start of the local
// calendar day), the last 7 days and the last 30 days, each independently.
func (s *Service) Summary() (SalesSummary, error) {
	var sales []models.Sale
	if err := s.st.Load(store.Sales, &sales); err != nil {
		return SalesSummary{}, err
	}

	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	var out SalesSummary
	for _, sale := range sales {
		if !sale.CreatedAt.Before(startOfDay) {
			out.Today.Revenue += sale.TotalPrice
			out.Today.Profit += sale.Profit
		}
		if !sale.CreatedAt.Before(weekAgo) {
			out.Week.Revenue += sale.TotalPrice
			out.Week.Profit += sale.Profit
		}
		if !sale.CreatedAt.Before(monthAgo) {
			out.Month.Revenue += sale.TotalPrice
			out.Month.Profit += sale.Profit
		}
	}
	return out, nil
}
