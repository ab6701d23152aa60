package model

import "encoding/json"

type QueryType string

const (
	QueryBlock       QueryType = "block"
	QueryTransaction QueryType = "transaction"
	QueryAddress     QueryType = "address"
	QueryUnknown     QueryType = "unknown"
)

type QueryStatus string

const (
	QueryFound       QueryStatus = "found"
	QueryNotFound    QueryStatus = "not_found"
	QueryInvalid     QueryStatus = "invalid"
	QueryUnavailable QueryStatus = "unavailable"
)

// QueryResult is the tagged union returned by search. At most one of the
// payload fields is set, matching Type.
type QueryResult struct {
	Type        QueryType
	Status      QueryStatus
	Block       *BlockDetail
	Transaction *TransactionDetail
	Address     *AddressProfile
}

// Data returns the payload matching Type, or an empty object.
func (r QueryResult) Data() any {
	switch {
	case r.Type == QueryBlock && r.Block != nil:
		return r.Block
	case r.Type == QueryTransaction && r.Transaction != nil:
		return r.Transaction
	case r.Type == QueryAddress && r.Address != nil:
		return r.Address
	default:
		return struct{}{}
	}
}

func (r QueryResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   QueryType   `json:"type"`
		Status QueryStatus `json:"status"`
		Data   any         `json:"data"`
	}{
		Type:   r.Type,
		Status: r.Status,
		Data:   r.Data(),
	})
}
