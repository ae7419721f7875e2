// internal/core/services/pricelist_test.go
package services_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/bakery-be/internal/core/domain"
	"github.com/ammerola/bakery-be/internal/core/services"
)

func TestRenderPriceList(t *testing.T) {
	items := []domain.BakeryItem{
		{ID: 1, Name: "Croissant", Description: "Buttery", Price: decimal.NewFromInt(150), Contact: "0712345678"},
		{ID: 2, Name: "Eclair", Description: "Coffee cream", Price: decimal.RequireFromString("85.5"), Contact: "0700000001"},
	}

	data, err := services.RenderPriceList(items)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Price List", sheet.Name)
	assert.Equal(t, 3, sheet.MaxRow)

	cell, err := sheet.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Name", cell.Value)

	cell, err = sheet.Cell(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "85.50", cell.Value)
}

func TestParsePriceList(t *testing.T) {
	items := []domain.BakeryItem{
		{ID: 7, Name: "Brioche", Description: "Soft", Price: decimal.NewFromInt(90), Contact: "0711111111"},
	}

	data, err := services.RenderPriceList(items)
	require.NoError(t, err)

	drafts, err := services.ParsePriceList(data)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	require.NotNil(t, drafts[0].ID)
	assert.Equal(t, int64(7), *drafts[0].ID)
	assert.Equal(t, "Brioche", drafts[0].Name)
	assert.Equal(t, "90.00", drafts[0].Price)

	mutation, err := drafts[0].Mutation()
	require.NoError(t, err)
	assert.IsType(t, domain.Update{}, mutation)
}

func TestParsePriceList_NewRowsAndBadIDs(t *testing.T) {
	build := func(rows [][]string) []byte {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Price List")
		require.NoError(t, err)
		for _, values := range rows {
			row := sheet.AddRow()
			for _, v := range values {
				row.AddCell().Value = v
			}
		}
		var buf bytes.Buffer
		require.NoError(t, file.Write(&buf))
		return buf.Bytes()
	}

	header := []string{"ID", "Name", "Description", "Price", "Contact"}

	drafts, err := services.ParsePriceList(build([][]string{
		header,
		{"", "Scone", "Clotted cream", "3", "0722222222"},
	}))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Nil(t, drafts[0].ID)

	_, err = services.ParsePriceList(build([][]string{
		header,
		{"x1", "Scone", "Clotted cream", "3", "0722222222"},
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid id")

	_, err = services.ParsePriceList([]byte("not a workbook"))
	assert.Error(t, err)
}
