package migrate

import (
	"database/sql"
	"fmt"

	"github.com/bhoirtrip-alt/plutocollrctions/models"
)

// MigrateUsers copies every user row into the destination, leaving rows
// whose id already exists untouched.
func MigrateUsers(src, dst *sql.DB) Result {
	res := Result{Entity: "users"}

	rows, err := src.Query(`
		SELECT id, username, email, password_hash, is_admin, created_at
		FROM user
	`)
	if err != nil {
		res.Err = fmt.Errorf("failed to read users: %w", err)
		return res
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt); err != nil {
			res.Err = fmt.Errorf("failed to scan user row: %w", err)
			return res
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		res.Err = fmt.Errorf("failed to read users: %w", err)
		return res
	}

	if len(users) == 0 {
		res.Skipped = true
		return res
	}

	args := make([]any, 0, len(users)*6)
	for _, u := range users {
		args = append(args, u.ID, u.Username, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt)
	}

	res.Rows = len(users)
	res.Err = upsert(dst, `INSERT INTO "user" (id, username, email, password_hash, is_admin, created_at)`, 6, args)
	return res
}

// MigrateProducts copies every product row. Columns the older SQLite schema
// may not have (subcategory, colors, sizes) fall back to empty strings.
func MigrateProducts(src, dst *sql.DB) Result {
	res := Result{Entity: "products"}

	subcategory, err := columnExpr(src, "product", "subcategory", "''")
	if err != nil {
		res.Err = err
		return res
	}
	colors, err := columnExpr(src, "product", "colors", "''")
	if err != nil {
		res.Err = err
		return res
	}
	sizes, err := columnExpr(src, "product", "sizes", "''")
	if err != nil {
		res.Err = err
		return res
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, price, image_url, category,
		       %s, stock, %s, %s, created_at
		FROM product
	`, subcategory, colors, sizes)

	rows, err := src.Query(query)
	if err != nil {
		res.Err = fmt.Errorf("failed to read products: %w", err)
		return res
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category,
			&p.Subcategory, &p.Stock, &p.Colors, &p.Sizes, &p.CreatedAt); err != nil {
			res.Err = fmt.Errorf("failed to scan product row: %w", err)
			return res
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		res.Err = fmt.Errorf("failed to read products: %w", err)
		return res
	}

	if len(products) == 0 {
		res.Skipped = true
		return res
	}

	args := make([]any, 0, len(products)*11)
	for _, p := range products {
		args = append(args, p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Category,
			p.Subcategory, p.Stock, p.Colors, p.Sizes, p.CreatedAt)
	}

	res.Rows = len(products)
	res.Err = upsert(dst, `INSERT INTO product (id, name, description, price, image_url, category,
		subcategory, stock, colors, sizes, created_at)`, 11, args)
	return res
}

// MigrateOrders copies every order row. A missing remaining_amount defaults
// to the order's total_amount, a missing advance_paid to zero.
func MigrateOrders(src, dst *sql.DB) Result {
	res := Result{Entity: "orders"}

	advancePaid, err := columnExpr(src, "order", "advance_paid", "0.0")
	if err != nil {
		res.Err = err
		return res
	}
	remainingAmount, err := columnExpr(src, "order", "remaining_amount", "total_amount")
	if err != nil {
		res.Err = err
		return res
	}
	utrNumber, err := columnExpr(src, "order", "utr_number", "''")
	if err != nil {
		res.Err = err
		return res
	}
	paymentScreenshot, err := columnExpr(src, "order", "payment_screenshot", "''")
	if err != nil {
		res.Err = err
		return res
	}

	query := fmt.Sprintf(`
		SELECT id, order_number, user_id, total_amount, %s, %s,
		       status, shipping_address, phone, %s, %s, created_at
		FROM "order"
	`, advancePaid, remainingAmount, utrNumber, paymentScreenshot)

	rows, err := src.Query(query)
	if err != nil {
		res.Err = fmt.Errorf("failed to read orders: %w", err)
		return res
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.TotalAmount, &o.AdvancePaid,
			&o.RemainingAmount, &o.Status, &o.ShippingAddress, &o.Phone,
			&o.UTRNumber, &o.PaymentScreenshot, &o.CreatedAt); err != nil {
			res.Err = fmt.Errorf("failed to scan order row: %w", err)
			return res
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		res.Err = fmt.Errorf("failed to read orders: %w", err)
		return res
	}

	if len(orders) == 0 {
		res.Skipped = true
		return res
	}

	args := make([]any, 0, len(orders)*12)
	for _, o := range orders {
		args = append(args, o.ID, o.OrderNumber, o.UserID, o.TotalAmount, o.AdvancePaid,
			o.RemainingAmount, o.Status, o.ShippingAddress, o.Phone,
			o.UTRNumber, o.PaymentScreenshot, o.CreatedAt)
	}

	res.Rows = len(orders)
	res.Err = upsert(dst, `INSERT INTO "order" (id, order_number, user_id, total_amount, advance_paid,
		remaining_amount, status, shipping_address, phone, utr_number, payment_screenshot, created_at)`, 12, args)
	return res
}

// MigrateOrderItems copies every order item row. Selected color and size
// default to empty strings.
func MigrateOrderItems(src, dst *sql.DB) Result {
	res := Result{Entity: "order items"}

	selectedColor, err := columnExpr(src, "order_item", "selected_color", "''")
	if err != nil {
		res.Err = err
		return res
	}
	selectedSize, err := columnExpr(src, "order_item", "selected_size", "''")
	if err != nil {
		res.Err = err
		return res
	}

	query := fmt.Sprintf(`
		SELECT id, order_id, product_id, quantity, price, %s, %s
		FROM order_item
	`, selectedColor, selectedSize)

	rows, err := src.Query(query)
	if err != nil {
		res.Err = fmt.Errorf("failed to read order items: %w", err)
		return res
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price,
			&it.SelectedColor, &it.SelectedSize); err != nil {
			res.Err = fmt.Errorf("failed to scan order item row: %w", err)
			return res
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		res.Err = fmt.Errorf("failed to read order items: %w", err)
		return res
	}

	if len(items) == 0 {
		res.Skipped = true
		return res
	}

	args := make([]any, 0, len(items)*7)
	for _, it := range items {
		args = append(args, it.ID, it.OrderID, it.ProductID, it.Quantity, it.Price,
			it.SelectedColor, it.SelectedSize)
	}

	res.Rows = len(items)
	res.Err = upsert(dst, `INSERT INTO order_item (id, order_id, product_id, quantity, price,
		selected_color, selected_size)`, 7, args)
	return res
}
