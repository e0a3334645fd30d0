package services

import (
	"github.com/kriskaras/realtech-arv-v1/models"
	"github.com/kriskaras/realtech-arv-v1/storage"
	"github.com/kriskaras/realtech-arv-v1/utils"
)

const defaultBatchSize = 1000

// Seeder replaces the store's sales with a new set, inserting in
// fixed-size sequential batches.
type Seeder struct {
	store     storage.SaleStore
	logger    *utils.Logger
	batchSize int
}

// NewSeeder creates a Seeder writing through the given store. A
// non-positive batch size falls back to the default; the insert loop
// requires a positive stride.
func NewSeeder(store storage.SaleStore, logger *utils.Logger, batchSize int) *Seeder {
	if batchSize <= 0 {
		logger.Warn("[seeder] Invalid batch size %d, using %d", batchSize, defaultBatchSize)
		batchSize = defaultBatchSize
	}
	return &Seeder{store: store, logger: logger, batchSize: batchSize}
}

// Run clears the store, then inserts the sales in order, one batch at a
// time; the last batch may be smaller. The run is not wrapped in a single
// transaction: a failure mid-run leaves the batches already committed in
// place, with no rollback. Concurrent runs are unsupported — two
// overlapping runs interleave deletes and inserts nondeterministically.
func (s *Seeder) Run(sales []*models.Sale) (int, error) {
	if err := s.store.Clear(); err != nil {
		return 0, err
	}

	for i := 0; i < len(sales); i += s.batchSize {
		end := i + s.batchSize
		if end > len(sales) {
			end = len(sales)
		}
		if err := s.store.InsertSales(sales[i:end]); err != nil {
			return i, err
		}
		s.logger.Debug("[seeder] Batch %d–%d inserted", i, end)
	}

	return len(sales), nil
}
