package model

// Product is one row of the dataset. Rows are immutable for the session.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	CreatedAt   string  `json:"createdAt"` // ISO 8601
	UpdatedAt   string  `json:"updatedAt"` // ISO 8601
	Price       float64 `json:"price"`
	SalePrice   float64 `json:"sale_price"`
}

// Field keys as they appear in the source document.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
	FieldPrice       = "price"
	FieldSalePrice   = "sale_price"
)

// FieldKeys lists every key Field resolves, in document order.
var FieldKeys = []string{
	FieldID,
	FieldName,
	FieldCategory,
	FieldSubcategory,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPrice,
	FieldSalePrice,
}

// Field returns the raw value stored under key. Unknown keys report false.
func (p Product) Field(key string) (any, bool) {
	switch key {
	case FieldID:
		return p.ID, true
	case FieldName:
		return p.Name, true
	case FieldCategory:
		return p.Category, true
	case FieldSubcategory:
		return p.Subcategory, true
	case FieldCreatedAt:
		return p.CreatedAt, true
	case FieldUpdatedAt:
		return p.UpdatedAt, true
	case FieldPrice:
		return p.Price, true
	case FieldSalePrice:
		return p.SalePrice, true
	default:
		return nil, false
	}
}
