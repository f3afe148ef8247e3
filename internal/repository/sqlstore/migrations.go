package sqlstore

var migrations = map[Dialect][]string{
	DialectMySQL: {
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(191) NOT NULL PRIMARY KEY,
			buyer_name VARCHAR(255) NOT NULL,
			style_number VARCHAR(255) NOT NULL,
			quantity INT NOT NULL,
			estimated_delivery BIGINT NOT NULL,
			buyer_email VARCHAR(255) NOT NULL,
			status VARCHAR(64) NOT NULL,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL,
			INDEX idx_orders_status (status),
			INDEX idx_orders_created (created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS order_updates (
			id VARCHAR(64) NOT NULL PRIMARY KEY,
			order_id VARCHAR(191) NOT NULL,
			message TEXT NOT NULL,
			author_name VARCHAR(255) NOT NULL,
			author_role VARCHAR(32) NOT NULL,
			created_at BIGINT NOT NULL,
			INDEX idx_order_updates_order (order_id, created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS order_comments (
			id VARCHAR(64) NOT NULL PRIMARY KEY,
			order_id VARCHAR(191) NOT NULL,
			message TEXT NOT NULL,
			author_name VARCHAR(255) NOT NULL,
			author_role VARCHAR(32) NOT NULL,
			created_at BIGINT NOT NULL,
			INDEX idx_order_comments_order (order_id, created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS stakeholders (
			id VARCHAR(64) NOT NULL PRIMARY KEY,
			order_id VARCHAR(191) NOT NULL,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			role VARCHAR(32) NOT NULL,
			permissions VARCHAR(16) NOT NULL,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL,
			INDEX idx_stakeholders_order (order_id, created_at)
		)`,
	},
	DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT NOT NULL PRIMARY KEY,
			buyer_name TEXT NOT NULL,
			style_number TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			estimated_delivery INTEGER NOT NULL,
			buyer_email TEXT NOT NULL,
			status TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders (created_at)`,
		`CREATE TABLE IF NOT EXISTS order_updates (
			id TEXT NOT NULL PRIMARY KEY,
			order_id TEXT NOT NULL,
			message TEXT NOT NULL,
			author_name TEXT NOT NULL,
			author_role TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_updates_order ON order_updates (order_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS order_comments (
			id TEXT NOT NULL PRIMARY KEY,
			order_id TEXT NOT NULL,
			message TEXT NOT NULL,
			author_name TEXT NOT NULL,
			author_role TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_comments_order ON order_comments (order_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS stakeholders (
			id TEXT NOT NULL PRIMARY KEY,
			order_id TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			role TEXT NOT NULL,
			permissions TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stakeholders_order ON stakeholders (order_id, created_at)`,
	},
}
