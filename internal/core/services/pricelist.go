// internal/core/services/pricelist.go
package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/bakery-be/internal/core/domain"
)

// PriceListContentType is the MIME type of a rendered price list
const PriceListContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const priceListSheet = "Price List"

var priceListHeaders = []string{"ID", "Name", "Description", "Price", "Contact"}

// RenderPriceList writes items as an xlsx workbook with one row per item
func RenderPriceList(items []domain.BakeryItem) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(priceListSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range priceListHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
	}

	for _, item := range items {
		row := sheet.AddRow()
		for _, value := range []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			item.Description,
			item.Price.StringFixed(2),
			item.Contact,
		} {
			row.AddCell().Value = value
		}
	}

	sheet.SetColWidth(1, 1, 24)
	sheet.SetColWidth(2, 2, 48)
	sheet.SetColWidth(3, 4, 16)

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write price list: %w", err)
	}

	return buffer.Bytes(), nil
}

// ParsePriceList reads the first sheet of an xlsx workbook laid out like
// RenderPriceList output. Rows with an id become edit drafts, rows
// without one become new entries. Completely empty rows are skipped.
func ParsePriceList(data []byte) ([]domain.Draft, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open price list: %w", err)
	}

	if len(file.Sheets) == 0 {
		return []domain.Draft{}, nil
	}

	drafts := []domain.Draft{}
	rowIdx := 0

	err = file.Sheets[0].ForEachRow(func(r *xlsx.Row) error {
		rowIdx++
		// header
		if rowIdx == 1 {
			return nil
		}

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			return strings.TrimSpace(c.String())
		}

		draft := domain.Draft{
			Name:        get(1),
			Description: get(2),
			Price:       get(3),
			Contact:     get(4),
		}

		rawID := get(0)
		if rawID == "" && draft == (domain.Draft{}) {
			return nil
		}
		if rawID != "" {
			id, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("row %d: invalid id %q", rowIdx, rawID)
			}
			draft.ID = &id
		}

		drafts = append(drafts, draft)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read price list rows: %w", err)
	}

	return drafts, nil
}
