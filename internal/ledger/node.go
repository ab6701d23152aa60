package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// EthNode implements Node over a go-ethereum RPC connection.
type EthNode struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client
}

// Dial connects to the node endpoint and applies the extra request headers.
func Dial(ctx context.Context, endpoint string, headers map[string]string) (*EthNode, error) {
	rpcClient, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial ledger node: %w", err)
	}
	for key, value := range headers {
		rpcClient.SetHeader(key, value)
	}
	return &EthNode{
		rpcClient: rpcClient,
		ethClient: ethclient.NewClient(rpcClient),
	}, nil
}

func (n *EthNode) Close() {
	n.rpcClient.Close()
}

func (n *EthNode) BlockNumber(ctx context.Context) (uint64, error) {
	return n.ethClient.BlockNumber(ctx)
}

func (n *EthNode) BlockByNumber(ctx context.Context, number uint64) (*RPCBlock, error) {
	var raw json.RawMessage
	if err := n.rpcClient.CallContext(ctx, &raw, "eth_getBlockByNumber", hexutil.EncodeUint64(number), false); err != nil {
		return nil, fmt.Errorf("eth_getBlockByNumber: %w", err)
	}
	if isNull(raw) {
		return nil, nil
	}
	var block RPCBlock
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, fmt.Errorf("unmarshal block %d: %w", number, err)
	}
	return &block, nil
}

func (n *EthNode) TransactionByHash(ctx context.Context, hash common.Hash) (*RPCTransaction, error) {
	var raw json.RawMessage
	if err := n.rpcClient.CallContext(ctx, &raw, "eth_getTransactionByHash", hash); err != nil {
		return nil, fmt.Errorf("eth_getTransactionByHash: %w", err)
	}
	if isNull(raw) {
		return nil, nil
	}
	var tx RPCTransaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		return nil, fmt.Errorf("unmarshal transaction %s: %w", hash, err)
	}
	return &tx, nil
}

func (n *EthNode) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	receipt, err := n.ethClient.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	return receipt, err
}

func (n *EthNode) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return n.ethClient.BalanceAt(ctx, account, nil)
}

func (n *EthNode) NonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return n.ethClient.NonceAt(ctx, account, nil)
}

func (n *EthNode) CodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return n.ethClient.CodeAt(ctx, account, nil)
}

func (n *EthNode) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return n.ethClient.SuggestGasPrice(ctx)
}

func (n *EthNode) TxPoolStatus(ctx context.Context) (*TxPoolStatus, error) {
	var status TxPoolStatus
	if err := n.rpcClient.CallContext(ctx, &status, "txpool_status"); err != nil {
		return nil, fmt.Errorf("txpool_status: %w", err)
	}
	return &status, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
