// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// CursorReader reads the committed ledger cursor.
type CursorReader interface {
	ReadCursor(ctx context.Context, coin model.Coin, network model.Network) (int64, error)
}

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer

	cursors CursorReader
	coin    model.Coin
	network model.Network
}

// NewExplorerHandler returns an ExplorerHandler reporting the ledger progress of coin on network.
func NewExplorerHandler(cursors CursorReader, coin model.Coin, network model.Network) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{cursors: cursors, coin: coin, network: network}
}

// Health reports server health together with how far the ledger has been crawled.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	cursor, err := h.cursors.ReadCursor(ctx, h.coin, h.network)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "read ledger cursor: %v", err)
	}

	description := "ledger empty"
	if cursor != model.InitialCursor {
		description = fmt.Sprintf("ledger cursor at height %d", cursor)
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: description,
	}, nil
}
