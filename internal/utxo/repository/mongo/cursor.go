package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReadCursor returns the last committed height, or model.InitialCursor when none was written.
func (r *Repository) ReadCursor(ctx context.Context, coin model.Coin, network model.Network) (cursor int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("read_cursor", coin, network, err, start)
	}()

	var doc stateDocument
	err = r.state.FindOne(ctx, bson.M{"_id": stateID(coin, network)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = nil
		return model.InitialCursor, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find cursor: %w", err)
	}
	return doc.Value, nil
}

// WriteCursor records height as the last committed height.
func (r *Repository) WriteCursor(ctx context.Context, coin model.Coin, network model.Network, height int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("write_cursor", coin, network, err, start)
	}()

	_, err = r.state.UpdateOne(ctx,
		bson.M{"_id": stateID(coin, network)},
		bson.M{"$set": bson.M{"value": height}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("update cursor: %w", err)
	}
	return nil
}
