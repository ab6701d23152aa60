package ledger

import (
	"fmt"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ashitosh07/monad-explorer/pkg/safe"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// BuildBlockDetail converts node output to the block model.
func BuildBlockDetail(b *RPCBlock) (*model.BlockDetail, error) {
	ts, err := safe.Int64(uint64(b.Timestamp))
	if err != nil {
		return nil, fmt.Errorf("block %d timestamp: %w", b.Number, err)
	}
	hashes := make([]string, 0, len(b.Transactions))
	for _, h := range b.Transactions {
		hashes = append(hashes, h.Hex())
	}
	return &model.BlockDetail{
		BlockSummary: model.BlockSummary{
			Height:        uint64(b.Number),
			Hash:          b.Hash.Hex(),
			ParentHash:    b.ParentHash.Hex(),
			Timestamp:     ts,
			TxCount:       len(b.Transactions),
			GasUsed:       uint64(b.GasUsed),
			GasLimit:      uint64(b.GasLimit),
			BaseFeePerGas: bigString(b.BaseFeePerGas),
			Miner:         b.Miner.Hex(),
		},
		Size:         uint64(b.Size),
		Transactions: hashes,
	}, nil
}

// BuildTransaction converts node output to the transaction model.
func BuildTransaction(tx *RPCTransaction) *model.Transaction {
	out := &model.Transaction{
		Hash:     tx.Hash.Hex(),
		From:     tx.From.Hex(),
		Value:    bigString(tx.Value),
		Gas:      uint64(tx.Gas),
		GasPrice: bigString(tx.GasPrice),
		Nonce:    uint64(tx.Nonce),
		Input:    tx.Input.String(),
	}
	if tx.BlockHash != nil {
		out.BlockHash = tx.BlockHash.Hex()
	}
	if tx.BlockNumber != nil && tx.BlockNumber.ToInt().IsUint64() {
		n := tx.BlockNumber.ToInt().Uint64()
		out.BlockNumber = &n
	}
	if tx.To != nil {
		out.To = tx.To.Hex()
	}
	return out
}

// BuildReceipt converts a go-ethereum receipt to the receipt model.
func BuildReceipt(r *types.Receipt) *model.Receipt {
	out := &model.Receipt{
		Status:            r.Status,
		GasUsed:           r.GasUsed,
		CumulativeGasUsed: r.CumulativeGasUsed,
		EffectiveGasPrice: "0",
		Logs:              len(r.Logs),
	}
	if r.BlockNumber != nil && r.BlockNumber.IsUint64() {
		out.BlockNumber = r.BlockNumber.Uint64()
	}
	if r.EffectiveGasPrice != nil {
		out.EffectiveGasPrice = r.EffectiveGasPrice.String()
	}
	if r.ContractAddress != (common.Address{}) {
		out.ContractAddress = r.ContractAddress.Hex()
	}
	return out
}

func bigString(v *hexutil.Big) string {
	if v == nil {
		return "0"
	}
	return v.ToInt().String()
}
