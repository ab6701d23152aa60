package ledger

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ObservedNode wraps a Node with per-operation metrics.
type ObservedNode struct {
	node       Node
	rpcMetrics RPCMetrics
}

func NewObservedNode(node Node, rpcMetrics RPCMetrics) *ObservedNode {
	return &ObservedNode{
		node:       node,
		rpcMetrics: rpcMetrics,
	}
}

func (o *ObservedNode) BlockNumber(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("block_number", err, started)
	}()
	return o.node.BlockNumber(ctx)
}

func (o *ObservedNode) BlockByNumber(ctx context.Context, number uint64) (block *RPCBlock, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("get_block_by_number", err, started)
	}()
	return o.node.BlockByNumber(ctx, number)
}

func (o *ObservedNode) TransactionByHash(ctx context.Context, hash common.Hash) (tx *RPCTransaction, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("get_transaction_by_hash", err, started)
	}()
	return o.node.TransactionByHash(ctx, hash)
}

func (o *ObservedNode) TransactionReceipt(ctx context.Context, hash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("get_transaction_receipt", err, started)
	}()
	return o.node.TransactionReceipt(ctx, hash)
}

func (o *ObservedNode) BalanceAt(ctx context.Context, account common.Address) (balance *big.Int, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("get_balance", err, started)
	}()
	return o.node.BalanceAt(ctx, account)
}

func (o *ObservedNode) NonceAt(ctx context.Context, account common.Address) (nonce uint64, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("get_transaction_count", err, started)
	}()
	return o.node.NonceAt(ctx, account)
}

func (o *ObservedNode) CodeAt(ctx context.Context, account common.Address) (code []byte, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("get_code", err, started)
	}()
	return o.node.CodeAt(ctx, account)
}

func (o *ObservedNode) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("gas_price", err, started)
	}()
	return o.node.SuggestGasPrice(ctx)
}

func (o *ObservedNode) TxPoolStatus(ctx context.Context) (status *TxPoolStatus, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("txpool_status", err, started)
	}()
	return o.node.TxPoolStatus(ctx)
}
