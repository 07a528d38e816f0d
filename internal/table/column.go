package table

import (
	"strconv"

	"prodtable/internal/util"
)

// Row is anything the table can read cell values from.
type Row interface {
	Field(key string) (any, bool)
}

// Column describes how a field is labeled, accessed, and formatted for display.
type Column struct {
	Key    string
	Header string
	// Format renders a raw value for display. Nil means the default renderer.
	Format func(v any) string
	// Width is the preferred display width in cells. Zero lets the view decide.
	Width int
}

// Value returns the raw value for the column in row. Keys that do not resolve
// yield nil, which renders as an empty cell.
func (c Column) Value(row Row) any {
	v, ok := row.Field(c.Key)
	if !ok {
		return nil
	}
	return v
}

// Render formats v for display.
func (c Column) Render(v any) string {
	if v == nil {
		return ""
	}
	if c.Format != nil {
		return c.Format(v)
	}
	return RawString(v)
}

// Cell renders the column's cell for row.
func (c Column) Cell(row Row) string {
	return c.Render(c.Value(row))
}

// RawString converts a raw value to text without column formatting.
func RawString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return util.FormatNumber(x)
	case bool:
		return strconv.FormatBool(x)
	case interface{ String() string }:
		return x.String()
	default:
		return ""
	}
}

// FindColumn returns the index of the column with key, or -1.
func FindColumn(columns []Column, key string) int {
	for i, c := range columns {
		if c.Key == key {
			return i
		}
	}
	return -1
}
