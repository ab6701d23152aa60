// Package search classifies user queries and dispatches ledger lookups.
package search

import (
	"context"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/address"
	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

type Dispatcher struct {
	logger  *zap.Logger
	ledger  Ledger
	metrics Metrics
	timeout time.Duration
}

func NewDispatcher(ledger Ledger, timeout time.Duration, metrics Metrics, logger *zap.Logger) (*Dispatcher, error) {
	if metrics == nil {
		return nil, errors.New("search metrics is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{
		logger:  logger,
		ledger:  ledger,
		metrics: metrics,
		timeout: timeout,
	}, nil
}

// Dispatch resolves a query under the search deadline. Failures are folded
// into the result status; Dispatch never returns an error. A query naming
// nothing on the ledger is unknown with status not_found.
func (d *Dispatcher) Dispatch(ctx context.Context, query string) (result model.QueryResult) {
	started := time.Now()
	defer func() {
		d.metrics.ObserveDispatch(result.Type, result.Status, started)
	}()

	query = strings.TrimSpace(query)
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	switch Classify(query) {
	case model.QueryBlock:
		result = d.block(ctx, query)
	case model.QueryTransaction:
		result = d.transaction(ctx, query)
	case model.QueryAddress:
		result = d.address(ctx, query)
	default:
		return model.QueryResult{Type: model.QueryUnknown, Status: model.QueryInvalid}
	}
	if result.Status == model.QueryNotFound {
		return model.QueryResult{Type: model.QueryUnknown, Status: model.QueryNotFound}
	}
	return result
}

func (d *Dispatcher) block(ctx context.Context, query string) model.QueryResult {
	result := model.QueryResult{Type: model.QueryBlock}
	height, err := strconv.ParseUint(query, 10, 64)
	if err != nil {
		// beyond uint64 no such block can exist
		result.Status = model.QueryNotFound
		return result
	}
	block, err := d.ledger.GetBlock(ctx, height)
	result.Status = d.status(err, result.Type)
	if err == nil {
		result.Block = block
	}
	return result
}

func (d *Dispatcher) transaction(ctx context.Context, hash string) model.QueryResult {
	result := model.QueryResult{Type: model.QueryTransaction}

	var (
		tx                *model.Transaction
		receipt           *model.Receipt
		txErr, receiptErr error
		wg                sync.WaitGroup
	)
	wg.Go(func() {
		tx, txErr = d.ledger.GetTransaction(ctx, hash)
	})
	wg.Go(func() {
		receipt, receiptErr = d.ledger.GetReceipt(ctx, hash)
	})
	wg.Wait()

	if txErr != nil {
		result.Status = d.status(txErr, result.Type)
		return result
	}
	if receiptErr != nil {
		// a missing receipt would read as pending, so do not guess
		result.Status = d.status(receiptErr, result.Type)
		return result
	}

	result.Status = model.QueryFound
	result.Transaction = &model.TransactionDetail{
		Transaction: *tx,
		Receipt:     receipt,
		Status:      model.StatusFromReceipt(receipt),
	}
	return result
}

func (d *Dispatcher) address(ctx context.Context, query string) model.QueryResult {
	result := model.QueryResult{Type: model.QueryAddress}

	var (
		balance *big.Int
		nonce   uint64
		code    []byte
		errs    [3]error
		wg      sync.WaitGroup
	)
	const (
		balanceIdx = iota
		nonceIdx
		codeIdx
	)
	wg.Go(func() {
		balance, errs[balanceIdx] = d.ledger.GetBalance(ctx, query)
	})
	wg.Go(func() {
		nonce, errs[nonceIdx] = d.ledger.GetTxCount(ctx, query)
	})
	wg.Go(func() {
		code, errs[codeIdx] = d.ledger.GetCode(ctx, query)
	})
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(errs) {
		result.Status = d.status(errors.Join(errs[:]...), result.Type)
		return result
	}
	if failed > 0 {
		d.logger.Warn("address lookup partially failed",
			zap.String("address", query),
			zap.NamedError("balance", errs[balanceIdx]),
			zap.NamedError("nonce", errs[nonceIdx]),
			zap.NamedError("code", errs[codeIdx]),
		)
	}

	// failed readings stay unset so the profile does not treat them as zero
	var readings address.Readings
	if errs[balanceIdx] == nil {
		readings.Balance = balance
	}
	if errs[nonceIdx] == nil {
		readings.TxCount = &nonce
	}
	if errs[codeIdx] == nil {
		readings.Code, readings.CodeRead = code, true
	}
	profile := address.AnalyzeReadings(common.HexToAddress(query).Hex(), readings)
	result.Status = model.QueryFound
	result.Address = &profile
	return result
}

func (d *Dispatcher) status(err error, queryType model.QueryType) model.QueryStatus {
	switch {
	case err == nil:
		return model.QueryFound
	case errors.Is(err, model.ErrNotFound):
		return model.QueryNotFound
	case errors.Is(err, model.ErrInvalidQuery):
		return model.QueryInvalid
	default:
		d.logger.Warn("search lookup failed", zap.String("type", string(queryType)), zap.Error(err))
		return model.QueryUnavailable
	}
}
