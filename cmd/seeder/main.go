// cmd/seeder/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ammerola/bakery-be/internal/adapters/db"
	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/ports"
	"github.com/ammerola/bakery-be/internal/core/services"
	"github.com/ammerola/bakery-be/internal/pkg/config"
	"github.com/ammerola/bakery-be/internal/pkg/logger"
)

// samplePastries seeds an empty listing when no price list file is given
var samplePastries = []domain.Draft{
	{Name: "Croissant", Description: "Buttery laminated dough", Price: "2.50", Contact: "Alice 555-0101"},
	{Name: "Pain au chocolat", Description: "Croissant dough around dark chocolate", Price: "2.90", Contact: "Alice 555-0101"},
	{Name: "Sourdough loaf", Description: "Naturally leavened, 800g", Price: "6.00", Contact: "Bob 555-0102"},
	{Name: "Cinnamon roll", Description: "With cream cheese icing", Price: "3.25", Contact: "Bob 555-0102"},
	{Name: "Baguette", Description: "Baked every morning", Price: "1.80", Contact: "Chloe 555-0103"},
	{Name: "Lemon tart", Description: "Shortcrust with lemon curd", Price: "4.50", Contact: "Chloe 555-0103"},
}

type options struct {
	file    string
	dryRun  bool
	migrate bool
}

// seedResult summarises one seeding run
type seedResult struct {
	Submitted   int
	Rejected    int
	ListingSize int64
}

func main() {
	var (
		file     = flag.String("file", "", "Price list (.xlsx) to load instead of the sample pastries")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Validate drafts without modifying the database")
		migrate  = flag.Bool("migrate", true, "Apply database migrations before seeding")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "json").Logger

	opts := options{file: *file, dryRun: *dryRun, migrate: *migrate}
	if err := run(context.Background(), opts, slogger); err != nil {
		slogger.Error("seed operation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, slogger *slog.Logger) error {
	drafts, err := loadDrafts(opts.file)
	if err != nil {
		return fmt.Errorf("failed to load drafts: %w", err)
	}

	if opts.dryRun {
		invalid := validateDrafts(drafts)
		fmt.Printf("\n[DRY RUN] %d drafts, %d invalid. No changes were made to the database\n", len(drafts), invalid)
		return nil
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig := db.ConfigFrom(cfg.Database)
	if opts.migrate {
		if err := db.RunMigrationsWithRetry(ctx, db.MigrationConfigFor(dbConfig), slogger, 3); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	database, err := db.NewDatabase(ctx, dbConfig, slogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	result, err := seed(ctx, db.NewItemStore(database, slogger), drafts, slogger)
	if err != nil {
		return err
	}

	printSummary(result)
	slogger.Info("seed operation completed",
		slog.Int("submitted", result.Submitted),
		slog.Int("rejected", result.Rejected),
		slog.Int64("listing_size", result.ListingSize))
	return nil
}

// seed submits every draft through the admin controller. Rejected
// drafts are counted; any other failure stops the run.
func seed(ctx context.Context, store ports.ItemStore, drafts []domain.Draft, slogger *slog.Logger) (seedResult, error) {
	var result seedResult

	admin, err := services.NewAdminController(ctx, store, slogger)
	if err != nil {
		return result, fmt.Errorf("failed to load listing: %w", err)
	}

	for i, draft := range drafts {
		fmt.Printf("PROGRESS: Submitting %d/%d: %s\n", i+1, len(drafts), draft.Name)

		if err := admin.Submit(ctx, draft); err != nil {
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				return result, fmt.Errorf("failed to save %q: %w", draft.Name, err)
			}
			result.Rejected++
			fmt.Printf("ERROR: entry %d (%s) - %v\n", i+1, draft.Name, err)
			continue
		}
		result.Submitted++
	}

	result.ListingSize, err = store.Count(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to count listing: %w", err)
	}
	return result, nil
}

func validateDrafts(drafts []domain.Draft) int {
	invalid := 0
	for i, draft := range drafts {
		if _, err := draft.Mutation(); err != nil {
			invalid++
			fmt.Printf("INVALID: entry %d (%s) - %v\n", i+1, draft.Name, err)
		}
	}
	return invalid
}

func printSummary(result seedResult) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Drafts submitted:  %d\n", result.Submitted)
	fmt.Printf("Drafts rejected:   %d\n", result.Rejected)
	fmt.Printf("Items in listing:  %d\n", result.ListingSize)
}

func loadDrafts(path string) ([]domain.Draft, error) {
	if path == "" {
		return samplePastries, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read price list: %w", err)
	}
	return services.ParsePriceList(data)
}
