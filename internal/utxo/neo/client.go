package neo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/fault"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-history/pkg/safe"
)

var _ chain.Client = (*Client)(nil)

// Client implements chain.Client on top of a node's JSON-RPC interface.
type Client struct {
	rpc RPCClient
}

// NewClient creates a Client.
func NewClient(rpc RPCClient) *Client {
	return &Client{rpc: rpc}
}

// ChainHeight returns the node's block count.
func (c *Client) ChainHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var count int64
	if err := c.call(methodGetBlockCount, &count); err != nil {
		return 0, fault.Transport("chain_height", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fault.Transport("chain_height", fmt.Errorf("block count: %w", err))
	}
	return height, nil
}

// FetchBlock retrieves the block at height with full transaction detail.
func (c *Client) FetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var src rpcBlock
	if err := c.call(methodGetBlock, &src, height, verbose); err != nil {
		return nil, fault.Transport("fetch_block", fmt.Errorf("height %d: %w", height, err))
	}
	block, err := convertBlock(src)
	if err != nil {
		return nil, fault.Transport("fetch_block", fmt.Errorf("height %d: %w", height, err))
	}
	return block, nil
}

// FetchTransaction retrieves a transaction by id with its inputs and outputs.
func (c *Client) FetchTransaction(ctx context.Context, txid string) (*model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var src rpcTransaction
	if err := c.call(methodGetRawTransaction, &src, txid, verbose); err != nil {
		return nil, fault.Transport("fetch_transaction", fmt.Errorf("tx %s: %w", txid, err))
	}
	tx, err := convertTransaction(src)
	if err != nil {
		return nil, fault.Transport("fetch_transaction", fmt.Errorf("tx %s: %w", txid, err))
	}
	return tx, nil
}

func (c *Client) call(method string, result any, params ...any) error {
	raw := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal %s params: %w", method, err)
		}
		raw = append(raw, b)
	}

	res, err := c.rpc.RawRequest(method, raw)
	if err != nil {
		var rpcErr *btcjson.RPCError
		if errors.As(err, &rpcErr) {
			return fmt.Errorf("%s rejected by node (code %d): %w", method, rpcErr.Code, err)
		}
		return fmt.Errorf("%s: %w", method, err)
	}
	if len(res) == 0 || string(res) == "null" {
		return fmt.Errorf("%s: empty result", method)
	}
	if err := json.Unmarshal(res, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
