// internal/core/domain/bakery_item.go
package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrItemNotFound is returned when no bakery item exists for an id
var ErrItemNotFound = errors.New("bakery item not found")

// ValidationError is a user-facing rejection of a draft
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports whether target is a ValidationError carrying the same message.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Message == e.Message
}

// Validation errors surfaced to the admin form
var (
	ErrFieldsRequired = &ValidationError{Message: "All fields are required"}
	ErrInvalidPrice   = &ValidationError{Message: "Invalid price format"}
)

// Prices are stored as NUMERIC(10,2)
const PriceScale = 2

// MaxPrice is the largest price the store can hold
var MaxPrice = decimal.RequireFromString("99999999.99")

// BakeryItem represents a single listed bakery product
type BakeryItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Contact     string          `json:"contact"`
}

// Fields returns the item's editable fields without its id
func (i BakeryItem) Fields() ItemFields {
	return ItemFields{
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Contact:     i.Contact,
	}
}

// ItemFields is a validated field set of a bakery item
type ItemFields struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Contact     string
}

// Mutation is a validated change request produced from a draft.
// It is either an Insert or an Update.
type Mutation interface {
	// Item returns the record the store should persist
	Item() BakeryItem
	mutation()
}

// Insert creates a new record; the store assigns its id
type Insert struct {
	Fields ItemFields
}

func (m Insert) Item() BakeryItem {
	return BakeryItem{
		Name:        m.Fields.Name,
		Description: m.Fields.Description,
		Price:       m.Fields.Price,
		Contact:     m.Fields.Contact,
	}
}

func (Insert) mutation() {}

// Update replaces the record with ID wholesale
type Update struct {
	ID     int64
	Fields ItemFields
}

func (m Update) Item() BakeryItem {
	item := Insert{Fields: m.Fields}.Item()
	item.ID = m.ID
	return item
}

func (Update) mutation() {}

// Draft holds the raw admin form input. ID is set while an existing
// record is being edited.
type Draft struct {
	ID          *int64 `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Contact     string `json:"contact"`
}

// DraftFromItem loads an existing record into a draft for editing
func DraftFromItem(item BakeryItem) Draft {
	id := item.ID
	return Draft{
		ID:          &id,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price.String(),
		Contact:     item.Contact,
	}
}

// Mutation validates the draft and turns it into an Insert or Update.
// Blank fields are reported before the price is parsed.
func (d Draft) Mutation() (Mutation, error) {
	name := strings.TrimSpace(d.Name)
	description := strings.TrimSpace(d.Description)
	rawPrice := strings.TrimSpace(d.Price)
	contact := strings.TrimSpace(d.Contact)

	if name == "" || description == "" || rawPrice == "" || contact == "" {
		return nil, ErrFieldsRequired
	}

	price, err := decimal.NewFromString(rawPrice)
	if err != nil || !validPrice(price) {
		return nil, ErrInvalidPrice
	}

	fields := ItemFields{
		Name:        name,
		Description: description,
		Price:       price,
		Contact:     contact,
	}

	if d.ID != nil {
		return Update{ID: *d.ID, Fields: fields}, nil
	}
	return Insert{Fields: fields}, nil
}

func validPrice(p decimal.Decimal) bool {
	return p.IsPositive() &&
		p.Equal(p.Truncate(PriceScale)) &&
		p.LessThanOrEqual(MaxPrice)
}

// FormMode is the admin form's edit mode
type FormMode int

const (
	FormCreating FormMode = iota
	FormEditing
)

func (m FormMode) String() string {
	switch m {
	case FormEditing:
		return "editing"
	default:
		return "creating"
	}
}

// FormState is Creating or Editing(ItemID)
type FormState struct {
	Mode   FormMode `json:"mode"`
	ItemID int64    `json:"item_id,omitempty"`
}

// Creating is the state of a form holding a fresh entry
func Creating() FormState {
	return FormState{Mode: FormCreating}
}

// Editing is the state of a form holding the record with id
func Editing(id int64) FormState {
	return FormState{Mode: FormEditing, ItemID: id}
}

// IsEditing reports whether the form is editing the record with id
func (s FormState) IsEditing(id int64) bool {
	return s.Mode == FormEditing && s.ItemID == id
}
