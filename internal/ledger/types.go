package ledger

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Node is the raw JSON-RPC surface of an EVM ledger node.
	// BlockByNumber and TransactionByHash return nil when the node answers null;
	// TransactionReceipt returns nil while the transaction is pending.
	Node interface {
		BlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, number uint64) (*RPCBlock, error)
		TransactionByHash(ctx context.Context, hash common.Hash) (*RPCTransaction, error)
		TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
		BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
		NonceAt(ctx context.Context, account common.Address) (uint64, error)
		CodeAt(ctx context.Context, account common.Address) ([]byte, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		TxPoolStatus(ctx context.Context) (*TxPoolStatus, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
