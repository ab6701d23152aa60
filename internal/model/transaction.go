package model

type TxStatus string

const (
	TxPending TxStatus = "pending"
	TxSuccess TxStatus = "success"
	TxFailed  TxStatus = "failed"
)

// Transaction is a ledger transaction as returned by the node.
type Transaction struct {
	Hash        string  `json:"hash"`
	BlockHash   string  `json:"blockHash,omitempty"`
	BlockNumber *uint64 `json:"blockNumber"`
	From        string  `json:"from"`
	To          string  `json:"to,omitempty"`
	Value       string  `json:"value"`
	Gas         uint64  `json:"gas"`
	GasPrice    string  `json:"gasPrice"`
	Nonce       uint64  `json:"nonce"`
	Input       string  `json:"input"`
}

// Receipt is the execution outcome of a mined transaction.
type Receipt struct {
	Status            uint64 `json:"status"`
	BlockNumber       uint64 `json:"blockNumber"`
	GasUsed           uint64 `json:"gasUsed"`
	CumulativeGasUsed uint64 `json:"cumulativeGasUsed"`
	EffectiveGasPrice string `json:"effectiveGasPrice"`
	ContractAddress   string `json:"contractAddress,omitempty"`
	Logs              int    `json:"logs"`
}

type TransactionDetail struct {
	Transaction Transaction `json:"transaction"`
	Receipt     *Receipt    `json:"receipt"`
	Status      TxStatus    `json:"status"`
}

// StatusFromReceipt maps a possibly missing receipt to a transaction status.
func StatusFromReceipt(r *Receipt) TxStatus {
	switch {
	case r == nil:
		return TxPending
	case r.Status == 1:
		return TxSuccess
	default:
		return TxFailed
	}
}
