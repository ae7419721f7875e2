// test/benchmarks/bakery_bench_test.go
package benchmarks

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ammerola/bakery-be/internal/adapters/db"
	redis_a "github.com/ammerola/bakery-be/internal/adapters/redis_adapter"
	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/services"
	"github.com/ammerola/bakery-be/test/helpers"
)

func BenchmarkItemStore(b *testing.B) {
	ctx := context.Background()
	store := db.NewItemStore(helpers.SetupSQLiteDB(b), helpers.TestLogger())

	b.Run("Insert", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			item := helpers.CreateTestBakeryItem()
			_ = store.Upsert(ctx, item)
		}
	})

	var ids []int64
	for _, item := range createBenchmarkItems(100) {
		item.ID = 0
		_ = store.Upsert(ctx, &item)
		ids = append(ids, item.ID)
	}

	b.Run("Replace", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			item := helpers.CreateTestBakeryItem(func(item *domain.BakeryItem) {
				item.ID = ids[i%len(ids)]
			})
			_ = store.Upsert(ctx, item)
		}
	})

	b.Run("Get", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = store.Get(ctx, ids[i%len(ids)])
		}
	})

	b.Run("ListAll", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = store.ListAll(ctx)
		}
	})
}

func BenchmarkAdminController(b *testing.B) {
	ctx := context.Background()
	logger := helpers.TestLogger()
	store := db.NewItemStore(helpers.SetupSQLiteDB(b), logger)

	admin, err := services.NewAdminController(ctx, store, logger)
	if err != nil {
		b.Fatal(err)
	}
	drafts := createBenchmarkDrafts(100)

	b.Run("Submit", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = admin.Submit(ctx, drafts[i%len(drafts)])
		}
	})

	b.Run("Items", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = admin.Items()
		}
	})
}

func BenchmarkPriceList(b *testing.B) {
	items := createBenchmarkItems(500)

	b.Run("Render", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = services.RenderPriceList(items)
		}
	})

	data, err := services.RenderPriceList(items)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Parse", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = services.ParsePriceList(data)
		}
	})
}

func BenchmarkMenuCache(b *testing.B) {
	ctx := context.Background()
	testRedis := helpers.SetupTestRedis(b)

	cache := redis_a.NewMenuCache(testRedis.Client, 0, helpers.TestLogger())
	items := createBenchmarkItems(100)

	b.Run("SetMenu", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = cache.SetMenu(ctx, items)
		}
	})

	b.Run("GetMenu", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = cache.GetMenu(ctx)
		}
	})
}

func BenchmarkDraftMutation(b *testing.B) {
	drafts := createBenchmarkDrafts(100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = drafts[i%len(drafts)].Mutation()
	}
}

// Memory allocation benchmarks
func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("BakeryItem", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = &domain.BakeryItem{
				ID:          int64(i),
				Name:        "Croissant",
				Description: "Buttery",
				Price:       decimal.NewFromFloat(2.5),
				Contact:     "0712345678",
			}
		}
	})

	b.Run("DraftFromItem", func(b *testing.B) {
		item := createBenchmarkItems(1)[0]

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = domain.DraftFromItem(item)
		}
	})
}
