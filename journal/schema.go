// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS months (
	id TEXT PRIMARY KEY,
	month TEXT NOT NULL UNIQUE,
	year INTEGER NOT NULL,
	month_name TEXT NOT NULL,
	starting_capital REAL NOT NULL,
	ending_capital REAL NOT NULL,
	deposits REAL NOT NULL,
	withdrawals REAL NOT NULL,
	gross_change REAL NOT NULL,
	net_profit_loss REAL NOT NULL,
	return_percentage REAL NOT NULL,
	status TEXT NOT NULL,
	pnl_source TEXT NOT NULL,
	notes TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	exit_date TEXT NOT NULL,
	entry_price REAL NOT NULL,
	exit_price REAL NOT NULL,
	quantity REAL NOT NULL,
	tags TEXT NOT NULL,
	notes TEXT NOT NULL,
	pnl REAL NOT NULL,
	return_percentage REAL NOT NULL,
	is_win INTEGER NOT NULL,
	month_key TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_months_month ON months(month);
CREATE INDEX IF NOT EXISTS idx_trades_month_key ON trades(month_key);
CREATE INDEX IF NOT EXISTS idx_trades_exit_date ON trades(exit_date);
`
