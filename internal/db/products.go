package db

import (
	"database/sql"
	"fmt"

	"prodtable/internal/model"
)

// ListProducts reads every product row in id order. The table view loads
// the result once at startup.
func ListProducts(db *sql.DB) ([]model.Product, error) {
	query := `
		SELECT
			id,
			name,
			COALESCE(category, ''),
			COALESCE(subcategory, ''),
			created_at,
			updated_at,
			price,
			sale_price
		FROM products
		ORDER BY id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var results []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Subcategory, &p.CreatedAt, &p.UpdatedAt, &p.Price, &p.SalePrice); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		results = append(results, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}

	return results, nil
}
