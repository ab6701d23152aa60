// Package metrics holds the prometheus collectors of the explorer engine.
package metrics

import "github.com/ashitosh07/monad-explorer/internal/model"

const namespace = "monad_explorer"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) model.Network {
	if network == "" {
		return "unknown"
	}
	return network
}
