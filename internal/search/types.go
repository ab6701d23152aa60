package search

import (
	"context"
	"math/big"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		GetBlock(ctx context.Context, height uint64) (*model.BlockDetail, error)
		GetTransaction(ctx context.Context, hash string) (*model.Transaction, error)
		GetReceipt(ctx context.Context, hash string) (*model.Receipt, error)
		GetBalance(ctx context.Context, address string) (*big.Int, error)
		GetTxCount(ctx context.Context, address string) (uint64, error)
		GetCode(ctx context.Context, address string) ([]byte, error)
	}
	Metrics interface {
		ObserveDispatch(queryType model.QueryType, status model.QueryStatus, started time.Time)
	}
)
