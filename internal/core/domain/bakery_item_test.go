package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/bakery-be/internal/core/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestDraft_Mutation(t *testing.T) {
	tests := []struct {
		name      string
		draft     domain.Draft
		wantErr   error
		wantItem  domain.BakeryItem
		wantIsNew bool
	}{
		{
			name: "valid_draft_without_id_becomes_insert",
			draft: domain.Draft{
				Name:        "Croissant",
				Description: "Buttery",
				Price:       "150.0",
				Contact:     "0712345678",
			},
			wantItem: domain.BakeryItem{
				Name:        "Croissant",
				Description: "Buttery",
				Price:       decimal.NewFromInt(150),
				Contact:     "0712345678",
			},
			wantIsNew: true,
		},
		{
			name: "valid_draft_with_id_becomes_update",
			draft: domain.Draft{
				ID:          int64Ptr(1),
				Name:        "Croissant",
				Description: "Buttery",
				Price:       "160",
				Contact:     "0712345678",
			},
			wantItem: domain.BakeryItem{
				ID:          1,
				Name:        "Croissant",
				Description: "Buttery",
				Price:       decimal.NewFromInt(160),
				Contact:     "0712345678",
			},
		},
		{
			name: "fields_are_trimmed",
			draft: domain.Draft{
				Name:        "  Baguette ",
				Description: "Crusty\t",
				Price:       " 2.50 ",
				Contact:     " 0700000000",
			},
			wantItem: domain.BakeryItem{
				Name:        "Baguette",
				Description: "Crusty",
				Price:       decimal.RequireFromString("2.5"),
				Contact:     "0700000000",
			},
			wantIsNew: true,
		},
		{
			name:    "blank_name",
			draft:   domain.Draft{Name: "   ", Description: "d", Price: "1", Contact: "c"},
			wantErr: domain.ErrFieldsRequired,
		},
		{
			name:    "blank_description",
			draft:   domain.Draft{Name: "n", Description: "", Price: "1", Contact: "c"},
			wantErr: domain.ErrFieldsRequired,
		},
		{
			name:    "blank_contact",
			draft:   domain.Draft{Name: "n", Description: "d", Price: "1", Contact: "\n"},
			wantErr: domain.ErrFieldsRequired,
		},
		{
			name:    "blank_price",
			draft:   domain.Draft{Name: "n", Description: "d", Price: " ", Contact: "c"},
			wantErr: domain.ErrFieldsRequired,
		},
		{
			name:    "blank_fields_reported_before_bad_price",
			draft:   domain.Draft{Name: "", Description: "d", Price: "abc", Contact: "c"},
			wantErr: domain.ErrFieldsRequired,
		},
		{
			name:    "non_numeric_price",
			draft:   domain.Draft{Name: "n", Description: "d", Price: "abc", Contact: "c"},
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name:    "negative_price",
			draft:   domain.Draft{Name: "n", Description: "d", Price: "-5", Contact: "c"},
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name:    "zero_price",
			draft:   domain.Draft{Name: "n", Description: "d", Price: "0", Contact: "c"},
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name:    "price_with_three_fractional_digits",
			draft:   domain.Draft{Name: "n", Description: "d", Price: "1.005", Contact: "c"},
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name:    "price_above_column_limit",
			draft:   domain.Draft{Name: "n", Description: "d", Price: "100000000", Contact: "c"},
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name:    "price_far_above_column_limit",
			draft:   domain.Draft{Name: "n", Description: "d", Price: "12345678901234567.89", Contact: "c"},
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name:  "largest_storable_price",
			draft: domain.Draft{Name: "n", Description: "d", Price: "99999999.99", Contact: "c"},
			wantItem: domain.BakeryItem{
				Name: "n", Description: "d", Price: domain.MaxPrice, Contact: "c",
			},
			wantIsNew: true,
		},
		{
			name:  "trailing_zeros_beyond_scale",
			draft: domain.Draft{Name: "n", Description: "d", Price: "2.500", Contact: "c"},
			wantItem: domain.BakeryItem{
				Name: "n", Description: "d", Price: decimal.RequireFromString("2.5"), Contact: "c",
			},
			wantIsNew: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutation, err := tt.draft.Mutation()

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, mutation)
				return
			}

			require.NoError(t, err)
			_, isInsert := mutation.(domain.Insert)
			assert.Equal(t, tt.wantIsNew, isInsert)

			item := mutation.Item()
			assert.Equal(t, tt.wantItem.ID, item.ID)
			assert.Equal(t, tt.wantItem.Name, item.Name)
			assert.Equal(t, tt.wantItem.Description, item.Description)
			assert.True(t, tt.wantItem.Price.Equal(item.Price), "price %s != %s", tt.wantItem.Price, item.Price)
			assert.Equal(t, tt.wantItem.Contact, item.Contact)
		})
	}
}

func TestValidationError_Matching(t *testing.T) {
	_, err := domain.Draft{}.Mutation()

	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "All fields are required", vErr.Message)
	assert.Equal(t, "All fields are required", err.Error())

	assert.ErrorIs(t, err, &domain.ValidationError{Message: "All fields are required"})
	assert.NotErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestDraftFromItem(t *testing.T) {
	item := domain.BakeryItem{
		ID:          7,
		Name:        "Eclair",
		Description: "Chocolate glaze",
		Price:       decimal.RequireFromString("3.75"),
		Contact:     "0711111111",
	}

	draft := domain.DraftFromItem(item)

	require.NotNil(t, draft.ID)
	assert.Equal(t, int64(7), *draft.ID)
	assert.Equal(t, "3.75", draft.Price)

	mutation, err := draft.Mutation()
	require.NoError(t, err)
	update, ok := mutation.(domain.Update)
	require.True(t, ok)
	assert.Equal(t, int64(7), update.ID)
	assert.Equal(t, item.Fields().Name, update.Fields.Name)
}

func TestFormState(t *testing.T) {
	assert.Equal(t, domain.FormCreating, domain.Creating().Mode)
	assert.Equal(t, "creating", domain.Creating().Mode.String())

	editing := domain.Editing(3)
	assert.Equal(t, "editing", editing.Mode.String())
	assert.True(t, editing.IsEditing(3))
	assert.False(t, editing.IsEditing(4))
	assert.False(t, domain.Creating().IsEditing(0))
}
