// Package rpcclient wraps the btcd JSON-RPC client with metrics and request throttling.
package rpcclient

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	RawRequester interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
)

// ObservedClient issues raw JSON-RPC requests, throttled by limiter and observed by method name.
type ObservedClient struct {
	client     RawRequester
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient wraps client. A nil limiter leaves requests unthrottled.
func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics, limiter ratelimit.Limiter) *ObservedClient {
	return newObservedClient(client, rpcMetrics, limiter)
}

func newObservedClient(client RawRequester, rpcMetrics RPCMetrics, limiter ratelimit.Limiter) *ObservedClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// NewLimiter returns a limiter allowing rps requests per second; rps <= 0 disables throttling.
func NewLimiter(rps int) ratelimit.Limiter {
	if rps <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(rps)
}

func (r *ObservedClient) RawRequest(method string, params []json.RawMessage) (res json.RawMessage, err error) {
	r.limiter.Take()

	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe(method, err, started)
	}()
	return r.client.RawRequest(method, params)
}
