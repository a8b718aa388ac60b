package journal

// Schema creates the deals table. Monetary columns are TEXT on purpose:
// decimal strings round-trip exactly where REAL would not.
const Schema = `
CREATE TABLE IF NOT EXISTS deals (
	deal_id TEXT PRIMARY KEY,
	instrument TEXT NOT NULL,
	side TEXT NOT NULL,
	amount TEXT NOT NULL,
	open_price TEXT NOT NULL,
	close_price TEXT NOT NULL,
	profit_loss TEXT NOT NULL,
	pl_asset TEXT NOT NULL,
	match_id TEXT NOT NULL DEFAULT '',
	open_time DATETIME NOT NULL,
	close_time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_deals_instrument ON deals(instrument);
CREATE INDEX IF NOT EXISTS idx_deals_close_time ON deals(close_time);
`
