package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'BUYER',
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		is_blocked BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createSellerProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE seller_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		company_name TEXT,
		business_type TEXT,
		address_line TEXT,
		city TEXT,
		state TEXT,
		postal_code TEXT,
		country TEXT,
		tax_id TEXT,
		website TEXT,
		bio TEXT,
		logo_url TEXT,
		status TEXT NOT NULL DEFAULT 'IN_PROGRESS',
		rejection_reason TEXT,
		submitted_at DATETIME,
		reviewed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createSellerDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE seller_documents (
		id TEXT PRIMARY KEY,
		subject_type TEXT NOT NULL,
		subject_id TEXT NOT NULL,
		type TEXT NOT NULL,
		number TEXT NOT NULL,
		url TEXT,
		expires_at DATETIME,
		status TEXT NOT NULL DEFAULT 'PENDING',
		rejection_reason TEXT,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createApprovalRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE approval_requests (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		resolved_by TEXT,
		resolved_at DATETIME,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		seller_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		base_price REAL NOT NULL,
		selling_price REAL NOT NULL,
		profit_margin REAL NOT NULL DEFAULT 0,
		stock INTEGER NOT NULL DEFAULT 0,
		image_urls TEXT,
		sku TEXT,
		is_published BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		buyer_id TEXT NOT NULL,
		order_number TEXT UNIQUE NOT NULL,
		subtotal REAL NOT NULL,
		tax REAL NOT NULL DEFAULT 0,
		shipping_cost REAL NOT NULL DEFAULT 0,
		total_amount REAL NOT NULL,
		held_amount REAL NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		shipping_name TEXT NOT NULL,
		shipping_address TEXT NOT NULL,
		shipping_city TEXT NOT NULL,
		shipping_state TEXT,
		shipping_zip TEXT NOT NULL,
		shipping_country TEXT NOT NULL,
		shipping_phone TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price REAL NOT NULL,
		created_at DATETIME
	);`)
}
