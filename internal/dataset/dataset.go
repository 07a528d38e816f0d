// Package dataset supplies the product rows and the column schema the
// table view renders.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"prodtable/internal/model"
	"prodtable/internal/table"
	"prodtable/internal/util"
)

//go:embed products.json
var bundled []byte

// Load decodes the dataset bundled into the binary.
func Load() ([]model.Product, error) {
	rows, err := decode(bundled)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bundled dataset: %w", err)
	}
	return rows, nil
}

// LoadFile decodes a JSON document with the same shape as the bundled one.
func LoadFile(path string) ([]model.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	rows, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return rows, nil
}

// Decode reads a JSON array of product objects.
func Decode(r io.Reader) ([]model.Product, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func decode(data []byte) ([]model.Product, error) {
	var rows []model.Product
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func formatDate(v any) string {
	s, _ := v.(string)
	return util.FormatDateMedium(s)
}

// Columns returns the column schema in display order.
func Columns() []table.Column {
	return []table.Column{
		{Key: model.FieldID, Header: "ID", Width: 4},
		{Key: model.FieldName, Header: "Name", Width: 24},
		{Key: model.FieldCategory, Header: "Category", Width: 12},
		{Key: model.FieldSubcategory, Header: "Sub Category", Width: 12},
		{Key: model.FieldCreatedAt, Header: "Created At", Format: formatDate, Width: 12},
		{Key: model.FieldUpdatedAt, Header: "Updated At", Format: formatDate, Width: 12},
		{Key: model.FieldPrice, Header: "Price", Width: 8},
		{Key: model.FieldSalePrice, Header: "Sale Price", Width: 10},
	}
}

// Validate reports duplicate column keys and keys the Product shape does not
// resolve. Such columns still render, with empty cells.
func Validate(columns []table.Column) []string {
	var problems []string
	seen := make(map[string]bool, len(columns))
	var probe model.Product
	for _, c := range columns {
		if seen[c.Key] {
			problems = append(problems, fmt.Sprintf("duplicate column key %q", c.Key))
		}
		seen[c.Key] = true
		if _, ok := probe.Field(c.Key); !ok {
			problems = append(problems, fmt.Sprintf("column key %q does not resolve against product rows", c.Key))
		}
	}
	return problems
}
