package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/kriskaras/realtech-arv-v1/models"
)

// PostgresStore persists canonical sales to PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresStore.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS sales (
			id             SERIAL PRIMARY KEY,
			lat            DOUBLE PRECISION NOT NULL,
			lon            DOUBLE PRECISION NOT NULL,
			sold_price_gbp INTEGER          NOT NULL,
			sold_date      DATE             NOT NULL,
			property_type  TEXT             NOT NULL DEFAULT 'Unknown',
			beds           INTEGER,
			floor_area_sqm DOUBLE PRECISION,
			created_at     TIMESTAMPTZ      NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_sales_sold_date     ON sales(sold_date);
		CREATE INDEX IF NOT EXISTS idx_sales_property_type ON sales(property_type);
	`)
	return err
}

// Clear deletes all existing sales from the table.
func (ps *PostgresStore) Clear() error {
	_, err := ps.db.Exec("DELETE FROM sales")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// InsertSales inserts one batch of sales with a single multi-row INSERT.
func (ps *PostgresStore) InsertSales(sales []*models.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	valueStrings := make([]string, 0, len(sales))
	valueArgs := make([]interface{}, 0, len(sales)*7)

	for idx, s := range sales {
		base := idx * 7
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		valueArgs = append(valueArgs,
			s.Lat, s.Lon, s.SoldPriceGbp, s.SoldDate, s.PropertyType, s.Beds, s.FloorAreaSqm)
	}

	query := fmt.Sprintf(`
		INSERT INTO sales (lat, lon, sold_price_gbp, sold_date, property_type, beds, floor_area_sqm)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	if _, err := ps.db.Exec(query, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert batch: %w", err)
	}
	return nil
}

// FetchRecent retrieves the most recent sales by sold date, newest first.
func (ps *PostgresStore) FetchRecent(limit int) ([]*models.Sale, error) {
	rows, err := ps.db.Query(`
		SELECT lat, lon, sold_price_gbp, sold_date, property_type, beds, floor_area_sqm
		FROM sales
		ORDER BY sold_date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch recent: %w", err)
	}
	defer rows.Close()

	var sales []*models.Sale
	for rows.Next() {
		s := &models.Sale{}
		if err := rows.Scan(
			&s.Lat, &s.Lon, &s.SoldPriceGbp, &s.SoldDate,
			&s.PropertyType, &s.Beds, &s.FloorAreaSqm,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
