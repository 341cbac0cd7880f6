package health

import (
	"database/sql"
	"fmt"
)

// CountRows returns the row count of a table.
func CountRows(db *sql.DB, table string) (int, error) {
	var count int
	err := db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, table)).Scan(&count)
	return count, err
}

// OrphanedOrderItems counts order items whose order no longer exists.
func OrphanedOrderItems(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM order_item oi
		LEFT JOIN "order" o ON oi.order_id = o.id
		WHERE o.id IS NULL
	`).Scan(&count)
	return count, err
}

// OrphanedProductImages counts uploaded images whose product no longer
// exists.
func OrphanedProductImages(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM product_image pi
		LEFT JOIN product p ON pi.product_id = p.id
		WHERE p.id IS NULL
	`).Scan(&count)
	return count, err
}

// LengthCount is one bucket of the order number length histogram.
type LengthCount struct {
	Length int
	Count  int
}

// OrderNumberLengths returns how many orders exist per order number length.
func OrderNumberLengths(db *sql.DB) ([]LengthCount, error) {
	rows, err := db.Query(`
		SELECT LENGTH(order_number) AS length, COUNT(*) AS count
		FROM "order"
		GROUP BY LENGTH(order_number)
		ORDER BY length
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lengths []LengthCount
	for rows.Next() {
		var lc LengthCount
		if err := rows.Scan(&lc.Length, &lc.Count); err != nil {
			return nil, err
		}
		lengths = append(lengths, lc)
	}

	return lengths, rows.Err()
}
