// internal/handlers/items_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/handlers"
	"github.com/ammerola/bakery-be/test/helpers"
	"github.com/ammerola/bakery-be/test/mocks"
)

type itemsFixture struct {
	admin   *mocks.MockAdminController
	store   *mocks.MockItemStore
	cache   *mocks.MockMenuCache
	handler *handlers.ItemsHandler
}

func newItemsFixture(t *testing.T) *itemsFixture {
	ctrl := gomock.NewController(t)
	f := &itemsFixture{
		admin: mocks.NewMockAdminController(ctrl),
		store: mocks.NewMockItemStore(ctrl),
		cache: mocks.NewMockMenuCache(ctrl),
	}
	f.handler = handlers.NewItemsHandler(f.admin, f.store, f.cache, helpers.TestLogger())
	return f
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()

	var response handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &response))
	return response.Error
}

func TestItemsHandler_ListItems(t *testing.T) {
	f := newItemsFixture(t)
	item := *helpers.CreateTestBakeryItem(func(i *domain.BakeryItem) { i.ID = 1 })

	f.admin.EXPECT().Items().Return([]domain.BakeryItem{item})
	f.admin.EXPECT().FormState().Return(domain.Editing(1))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/items", nil)
	w := httptest.NewRecorder()
	f.handler.ListItems(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var snapshot handlers.AdminSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	require.Len(t, snapshot.Items, 1)
	helpers.CompareBakeryItems(t, item, snapshot.Items[0])
	assert.Equal(t, domain.Editing(1), snapshot.Form)
}

func TestItemsHandler_GetItem(t *testing.T) {
	item := helpers.CreateTestBakeryItem(func(i *domain.BakeryItem) { i.ID = 7 })

	tests := []struct {
		name           string
		id             string
		setupMocks     func(*mocks.MockItemStore)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successfully_retrieves_item",
			id:   "7",
			setupMocks: func(m *mocks.MockItemStore) {
				m.EXPECT().Get(gomock.Any(), int64(7)).Return(item, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_id_format",
			id:             "seven",
			setupMocks:     func(m *mocks.MockItemStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid item ID",
		},
		{
			name:           "non_positive_id",
			id:             "0",
			setupMocks:     func(m *mocks.MockItemStore) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid item ID",
		},
		{
			name: "item_not_found",
			id:   "404",
			setupMocks: func(m *mocks.MockItemStore) {
				m.EXPECT().Get(gomock.Any(), int64(404)).
					Return(nil, fmt.Errorf("failed to get bakery item 404: %w", domain.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Bakery item not found",
		},
		{
			name: "store_error",
			id:   "7",
			setupMocks: func(m *mocks.MockItemStore) {
				m.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, errors.New("database is locked"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to retrieve bakery item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newItemsFixture(t)
			tt.setupMocks(f.store)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/items/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			f.handler.GetItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body.Bytes()))
				return
			}

			var got domain.BakeryItem
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			helpers.CompareBakeryItems(t, *item, got)
		})
	}
}

func TestItemsHandler_CreateItem(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*itemsFixture)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "creates_item_and_invalidates_menu",
			body: `{"name":"Croissant","description":"Buttery","price":"150","contact":"0712345678"}`,
			setupMocks: func(f *itemsFixture) {
				f.admin.EXPECT().Submit(gomock.Any(), helpers.NewTestDraft()).Return(nil)
				f.cache.EXPECT().InvalidateMenu(gomock.Any()).Return(nil)
				f.admin.EXPECT().Items().Return([]domain.BakeryItem{*helpers.CreateTestBakeryItem()})
				f.admin.EXPECT().FormState().Return(domain.Creating())
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "ignores_id_in_body",
			body: `{"id":9,"name":"Croissant","description":"Buttery","price":"150","contact":"0712345678"}`,
			setupMocks: func(f *itemsFixture) {
				f.admin.EXPECT().Submit(gomock.Any(), helpers.NewTestDraft()).Return(nil)
				f.cache.EXPECT().InvalidateMenu(gomock.Any()).Return(nil)
				f.admin.EXPECT().Items().Return(nil)
				f.admin.EXPECT().FormState().Return(domain.Creating())
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid_json",
			body:           `{"name":`,
			setupMocks:     func(f *itemsFixture) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "blank_field_is_rejected_with_exact_message",
			body: `{"name":"","description":"Buttery","price":"150","contact":"0712345678"}`,
			setupMocks: func(f *itemsFixture) {
				f.admin.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.ErrFieldsRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "All fields are required",
		},
		{
			name: "bad_price_is_rejected_with_exact_message",
			body: `{"name":"Croissant","description":"Buttery","price":"abc","contact":"0712345678"}`,
			setupMocks: func(f *itemsFixture) {
				f.admin.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(domain.ErrInvalidPrice)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid price format",
		},
		{
			name: "persistence_failure",
			body: `{"name":"Croissant","description":"Buttery","price":"150","contact":"0712345678"}`,
			setupMocks: func(f *itemsFixture) {
				f.admin.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(errors.New("failed to submit bakery item: disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to save bakery item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newItemsFixture(t)
			tt.setupMocks(f)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/items", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			f.handler.CreateItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w.Body.Bytes()))
			}
		})
	}
}

func TestItemsHandler_UpdateItem(t *testing.T) {
	t.Run("uses_path_id", func(t *testing.T) {
		f := newItemsFixture(t)

		id := int64(3)
		expected := helpers.NewTestDraft(func(d *domain.Draft) {
			d.ID = &id
			d.Price = "160"
		})
		f.admin.EXPECT().Submit(gomock.Any(), expected).Return(nil)
		f.cache.EXPECT().InvalidateMenu(gomock.Any()).Return(nil)
		f.admin.EXPECT().Items().Return(nil)
		f.admin.EXPECT().FormState().Return(domain.Creating())

		body := `{"id":99,"name":"Croissant","description":"Buttery","price":"160","contact":"0712345678"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/items/3", bytes.NewBufferString(body))
		req.SetPathValue("id", "3")
		w := httptest.NewRecorder()
		f.handler.UpdateItem(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid_id", func(t *testing.T) {
		f := newItemsFixture(t)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/items/x", bytes.NewBufferString(`{}`))
		req.SetPathValue("id", "x")
		w := httptest.NewRecorder()
		f.handler.UpdateItem(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid item ID", decodeError(t, w.Body.Bytes()))
	})

	t.Run("cache_failure_does_not_fail_request", func(t *testing.T) {
		f := newItemsFixture(t)

		f.admin.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().InvalidateMenu(gomock.Any()).Return(errors.New("connection refused"))
		f.admin.EXPECT().Items().Return(nil)
		f.admin.EXPECT().FormState().Return(domain.Creating())

		body := `{"name":"Croissant","description":"Buttery","price":"160","contact":"0712345678"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/items/1", bytes.NewBufferString(body))
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		f.handler.UpdateItem(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestItemsHandler_DeleteItem(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMocks     func(*itemsFixture)
		expectedStatus int
	}{
		{
			name: "removes_item",
			id:   "4",
			setupMocks: func(f *itemsFixture) {
				f.admin.EXPECT().Remove(gomock.Any(), domain.BakeryItem{ID: 4}).Return(nil)
				f.cache.EXPECT().InvalidateMenu(gomock.Any()).Return(nil)
				f.admin.EXPECT().Items().Return([]domain.BakeryItem{})
				f.admin.EXPECT().FormState().Return(domain.Creating())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "remove_failure",
			id:   "4",
			setupMocks: func(f *itemsFixture) {
				f.admin.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid_id",
			id:             "-1",
			setupMocks:     func(f *itemsFixture) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newItemsFixture(t)
			tt.setupMocks(f)

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/items/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			w := httptest.NewRecorder()
			f.handler.DeleteItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestItemsHandler_FormRoutes(t *testing.T) {
	item := *helpers.CreateTestBakeryItem(func(i *domain.BakeryItem) { i.ID = 2 })

	t.Run("edit_loads_item_into_form", func(t *testing.T) {
		f := newItemsFixture(t)

		f.admin.EXPECT().Items().Return([]domain.BakeryItem{item})
		f.admin.EXPECT().Edit(item).Return(domain.DraftFromItem(item))
		f.admin.EXPECT().FormState().Return(domain.Editing(2))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/items/2/edit", nil)
		req.SetPathValue("id", "2")
		w := httptest.NewRecorder()
		f.handler.EditItem(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response handlers.FormResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Draft.ID)
		assert.Equal(t, int64(2), *response.Draft.ID)
		assert.Equal(t, "150", response.Draft.Price)
		assert.Equal(t, domain.Editing(2), response.Form)
	})

	t.Run("edit_unknown_item", func(t *testing.T) {
		f := newItemsFixture(t)

		f.admin.EXPECT().Items().Return([]domain.BakeryItem{item})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/items/5/edit", nil)
		req.SetPathValue("id", "5")
		w := httptest.NewRecorder()
		f.handler.EditItem(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reset_starts_new_entry", func(t *testing.T) {
		f := newItemsFixture(t)

		f.admin.EXPECT().NewEntry().Return(domain.Draft{})
		f.admin.EXPECT().FormState().Return(domain.Creating())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/form/reset", nil)
		w := httptest.NewRecorder()
		f.handler.ResetForm(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var response handlers.FormResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Nil(t, response.Draft.ID)
		assert.Equal(t, domain.Creating(), response.Form)
	})

	t.Run("get_form", func(t *testing.T) {
		f := newItemsFixture(t)

		f.admin.EXPECT().FormState().Return(domain.Editing(2))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/form", nil)
		w := httptest.NewRecorder()
		f.handler.GetForm(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"item_id":2`)
	})
}

func TestItemsHandler_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	admin := mocks.NewMockAdminController(ctrl)
	handler := handlers.NewItemsHandler(admin, mocks.NewMockItemStore(ctrl), nil, helpers.TestLogger())

	admin.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil)
	admin.EXPECT().Items().Return(nil)
	admin.EXPECT().FormState().Return(domain.Creating())

	body := `{"name":"Croissant","description":"Buttery","price":"150","contact":"0712345678"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/items", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	handler.CreateItem(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
