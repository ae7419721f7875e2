// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ammerola/bakery-be/internal/core/domain"
)

var pastryNames = []string{
	"Croissant",
	"Pain au chocolat",
	"Sourdough loaf",
	"Cinnamon roll",
	"Baguette",
	"Lemon tart",
	"Eclair",
	"Macaron box",
	"Brioche",
	"Apple turnover",
}

// createBenchmarkItems builds n stored items with ids 1..n
func createBenchmarkItems(n int) []domain.BakeryItem {
	items := make([]domain.BakeryItem, n)
	for i := range items {
		items[i] = domain.BakeryItem{
			ID:          int64(i + 1),
			Name:        fmt.Sprintf("%s #%d", pastryNames[i%len(pastryNames)], i+1),
			Description: "Baked fresh every morning with locally milled flour",
			Price:       decimal.NewFromInt(int64(150 + i)).Shift(-2),
			Contact:     fmt.Sprintf("Baker %d 555-%04d", i%7, i),
		}
	}
	return items
}

// createBenchmarkDrafts builds n valid drafts for new entries
func createBenchmarkDrafts(n int) []domain.Draft {
	drafts := make([]domain.Draft, n)
	for i := range drafts {
		drafts[i] = domain.Draft{
			Name:        fmt.Sprintf("%s #%d", pastryNames[i%len(pastryNames)], i+1),
			Description: "Baked fresh every morning",
			Price:       fmt.Sprintf("%d.%02d", 1+i%9, i%100),
			Contact:     "0712345678",
		}
	}
	return drafts
}
