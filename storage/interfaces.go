package storage

import "github.com/kriskaras/realtech-arv-v1/models"

// SaleStore is the interface the seeding pipeline writes through.
type SaleStore interface {
	Clear() error
	InsertSales(sales []*models.Sale) error
	Close() error
}

// SaleReader is the interface the API reads through.
type SaleReader interface {
	FetchRecent(limit int) ([]*models.Sale, error)
}
