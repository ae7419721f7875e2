package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/bakery-be/internal/adapters/db"
	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/test/helpers"
	"github.com/ammerola/bakery-be/test/mocks"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("sample_pastries_fill_an_empty_listing", func(t *testing.T) {
		store := db.NewItemStore(helpers.SetupSQLiteDB(t), helpers.TestLogger())

		result, err := seed(ctx, store, samplePastries, helpers.TestLogger())
		require.NoError(t, err)
		assert.Equal(t, len(samplePastries), result.Submitted)
		assert.Zero(t, result.Rejected)
		assert.EqualValues(t, len(samplePastries), result.ListingSize)
	})

	t.Run("listing_size_includes_existing_items", func(t *testing.T) {
		store := db.NewItemStore(helpers.SetupSQLiteDB(t), helpers.TestLogger())
		require.NoError(t, store.Upsert(ctx, helpers.CreateTestBakeryItem()))

		result, err := seed(ctx, store, samplePastries[:2], helpers.TestLogger())
		require.NoError(t, err)
		assert.EqualValues(t, 3, result.ListingSize)
	})

	t.Run("rejected_drafts_are_counted", func(t *testing.T) {
		store := db.NewItemStore(helpers.SetupSQLiteDB(t), helpers.TestLogger())
		drafts := []domain.Draft{
			helpers.NewTestDraft(),
			helpers.NewTestDraft(func(d *domain.Draft) { d.Price = "abc" }),
			helpers.NewTestDraft(func(d *domain.Draft) { d.Contact = "" }),
		}

		result, err := seed(ctx, store, drafts, helpers.TestLogger())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Submitted)
		assert.Equal(t, 2, result.Rejected)
		assert.EqualValues(t, 1, result.ListingSize)
	})

	t.Run("store_failure_stops_the_run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockItemStore(ctrl)
		store.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
		store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

		result, err := seed(ctx, store, samplePastries, helpers.TestLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is locked")
		assert.Zero(t, result.Submitted)
	})
}

func TestValidateDrafts(t *testing.T) {
	drafts := []domain.Draft{
		helpers.NewTestDraft(),
		helpers.NewTestDraft(func(d *domain.Draft) { d.Price = "1.005" }),
		helpers.NewTestDraft(func(d *domain.Draft) { d.Name = " " }),
	}

	assert.Equal(t, 2, validateDrafts(drafts))
	assert.Zero(t, validateDrafts(samplePastries))
}

func TestRun_MissingPriceList(t *testing.T) {
	err := run(context.Background(), options{file: "does-not-exist.xlsx", dryRun: true}, helpers.TestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load drafts")
}
