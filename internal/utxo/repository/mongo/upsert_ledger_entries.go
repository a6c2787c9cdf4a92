package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertLedgerEntries replaces each entry's document by id in one unordered bulk write.
func (r *Repository) UpsertLedgerEntries(ctx context.Context, entries []model.LedgerEntry) (err error) {
	start := time.Now()
	var (
		coin    model.Coin
		network model.Network
	)
	if len(entries) > 0 {
		coin, network = entries[0].Coin, entries[0].Network
	}
	defer func() {
		r.metrics.Observe("upsert_ledger_entries", coin, network, err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(entries))
	for _, e := range entries {
		doc, docErr := toHistoryDocument(e)
		if docErr != nil {
			err = docErr
			return err
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": e.ID}).
			SetUpdate(bson.M{"$set": doc}).
			SetUpsert(true))
	}

	if _, err = r.history.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("bulk upsert ledger entries: %w", err)
	}
	return nil
}
