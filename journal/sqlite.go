package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal is an append-only deal journal backed by a SQLite file.
type SQLiteJournal struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the journal at path.
func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteJournal{db: db}, nil
}

// Record inserts one deal row.
func (j *SQLiteJournal) Record(r DealRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO deals
		(deal_id, instrument, side, amount, open_price, close_price, profit_loss, pl_asset, match_id, open_time, close_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.DealID, r.Instrument, r.Side, r.Amount, r.OpenPrice,
		r.ClosePrice, r.ProfitLoss, r.PLAsset, r.MatchID, r.OpenTime, r.CloseTime,
	)
	return err
}

// List returns every recorded deal, oldest close first.
func (j *SQLiteJournal) List() ([]DealRecord, error) {
	rows, err := j.db.Query(`
		SELECT deal_id, instrument, side, amount, open_price, close_price, profit_loss, pl_asset, match_id, open_time, close_time
		FROM deals ORDER BY close_time, deal_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []DealRecord
	for rows.Next() {
		var r DealRecord
		if err := rows.Scan(
			&r.DealID, &r.Instrument, &r.Side, &r.Amount, &r.OpenPrice,
			&r.ClosePrice, &r.ProfitLoss, &r.PLAsset, &r.MatchID, &r.OpenTime, &r.CloseTime,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
