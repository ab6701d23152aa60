// Package ledger adapts an EVM JSON-RPC node to the explorer model.
package ledger

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ashitosh07/monad-explorer/internal/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Client exposes ledger lookups with a mandatory per-call timeout. Failures
// wrap model.ErrTransport, absent entities wrap model.ErrNotFound.
type Client struct {
	node    Node
	timeout time.Duration
}

func NewClient(node Node, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Client{
		node:    node,
		timeout: timeout,
	}
}

// LatestHeight returns the current chain height.
func (c *Client) LatestHeight(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	height, err := c.node.BlockNumber(ctx)
	if err != nil {
		return 0, transportErr("latest height", err)
	}
	return height, nil
}

// GetBlock fetches a block in summary mode.
func (c *Client) GetBlock(ctx context.Context, height uint64) (*model.BlockDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	block, err := c.node.BlockByNumber(ctx, height)
	if err != nil {
		return nil, transportErr(fmt.Sprintf("get block %d", height), err)
	}
	if block == nil {
		return nil, fmt.Errorf("block %d: %w", height, model.ErrNotFound)
	}
	detail, err := BuildBlockDetail(block)
	if err != nil {
		return nil, transportErr(fmt.Sprintf("convert block %d", height), err)
	}
	return detail, nil
}

func (c *Client) GetTransaction(ctx context.Context, hash string) (*model.Transaction, error) {
	h, err := ParseHash(hash)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	tx, err := c.node.TransactionByHash(ctx, h)
	if err != nil {
		return nil, transportErr("get transaction", err)
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction %s: %w", hash, model.ErrNotFound)
	}
	return BuildTransaction(tx), nil
}

// GetReceipt returns nil without error while the transaction is pending.
func (c *Client) GetReceipt(ctx context.Context, hash string) (*model.Receipt, error) {
	h, err := ParseHash(hash)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	receipt, err := c.node.TransactionReceipt(ctx, h)
	if err != nil {
		return nil, transportErr("get receipt", err)
	}
	if receipt == nil {
		return nil, nil
	}
	return BuildReceipt(receipt), nil
}

func (c *Client) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	account, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	balance, err := c.node.BalanceAt(ctx, account)
	if err != nil {
		return nil, transportErr("get balance", err)
	}
	return balance, nil
}

func (c *Client) GetTxCount(ctx context.Context, address string) (uint64, error) {
	account, err := ParseAddress(address)
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	nonce, err := c.node.NonceAt(ctx, account)
	if err != nil {
		return 0, transportErr("get transaction count", err)
	}
	return nonce, nil
}

func (c *Client) GetCode(ctx context.Context, address string) ([]byte, error) {
	account, err := ParseAddress(address)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	code, err := c.node.CodeAt(ctx, account)
	if err != nil {
		return nil, transportErr("get code", err)
	}
	return code, nil
}

// GasPrice returns the node's suggested gas price in wei.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	price, err := c.node.SuggestGasPrice(ctx)
	if err != nil {
		return nil, transportErr("gas price", err)
	}
	return price, nil
}

func (c *Client) TxPoolStatus(ctx context.Context) (model.Mempool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status, err := c.node.TxPoolStatus(ctx)
	if err != nil {
		return model.Mempool{}, transportErr("txpool status", err)
	}
	if status == nil {
		return model.Mempool{}, nil
	}
	return model.Mempool{Pending: uint64(status.Pending), Queued: uint64(status.Queued)}, nil
}

// ParseAddress validates a 0x-prefixed 20 byte hex address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) || !has0xPrefix(s) {
		return common.Address{}, fmt.Errorf("address %q: %w", s, model.ErrInvalidQuery)
	}
	return common.HexToAddress(s), nil
}

// ParseHash validates a 0x-prefixed 32 byte hex hash.
func ParseHash(s string) (common.Hash, error) {
	if len(s) != 2+2*common.HashLength {
		return common.Hash{}, fmt.Errorf("hash %q: %w", s, model.ErrInvalidQuery)
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, fmt.Errorf("hash %q: %w", s, model.ErrInvalidQuery)
	}
	return common.BytesToHash(b), nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func transportErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, model.ErrTransport, err)
}
