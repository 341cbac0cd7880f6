package migrate

import (
	"database/sql"
	"fmt"
	"strings"
)

// upsertChunkSize keeps each statement comfortably under the driver's bind
// parameter limit.
const upsertChunkSize = 200

// upsert inserts rows in chunks inside a single transaction, leaving rows
// whose primary key already exists untouched. args holds width values per
// row, in row order. The transaction is rolled back on any failure, so an
// entity is either fully migrated or not touched by this run.
func upsert(dst *sql.DB, insertPrefix string, width int, args []any) error {
	tx, err := dst.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	total := len(args) / width
	for start := 0; start < total; start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > total {
			end = total
		}

		query := insertPrefix + " VALUES " + placeholders(width, end-start) +
			" ON CONFLICT (id) DO NOTHING"
		if _, err := tx.Exec(query, args[start*width:end*width]...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert rows: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// placeholders renders ($1, ..., $width), ($width+1, ...), ... for count rows.
func placeholders(width, count int) string {
	var b strings.Builder
	n := 1
	for row := 0; row < count; row++ {
		if row > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for col := 0; col < width; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", n)
			n++
		}
		b.WriteByte(')')
	}
	return b.String()
}

// columnExpr returns a SELECT expression for a source column that may be
// missing in older schemas: COALESCE over the column when it exists, the
// literal default otherwise.
func columnExpr(src *sql.DB, table, column, def string) (string, error) {
	var count int
	err := src.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?",
		table, column,
	).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("failed to check for %s.%s column: %w", table, column, err)
	}

	if count == 0 {
		return def, nil
	}
	return fmt.Sprintf("COALESCE(%s, %s)", column, def), nil
}
