// Package metrics exposes application metrics collectors.
package metrics

import "github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"

const (
	namespace = "blockinsight7000"

	statusSuccess = "success"
	statusError   = "error"
	unknownLabel  = "unknown"
)

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}

func labels(coin model.Coin, network model.Network) (string, string) {
	c, n := string(coin), string(network)
	if c == "" {
		c = unknownLabel
	}
	if n == "" {
		n = unknownLabel
	}
	return c, n
}
