package search

import (
	"regexp"
	"strings"

	"github.com/ashitosh07/monad-explorer/internal/model"
)

var (
	blockPattern       = regexp.MustCompile(`^[0-9]+$`)
	transactionPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	addressPattern     = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Classify maps a query to the entity kind it names. Patterns are tried in
// order: block height, transaction hash, address.
func Classify(query string) model.QueryType {
	query = strings.TrimSpace(query)
	switch {
	case blockPattern.MatchString(query):
		return model.QueryBlock
	case transactionPattern.MatchString(query):
		return model.QueryTransaction
	case addressPattern.MatchString(query):
		return model.QueryAddress
	default:
		return model.QueryUnknown
	}
}
