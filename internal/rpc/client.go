package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/pkg/config"
	pkgrpc "github.com/goran-ethernal/ChainCache/pkg/rpc"
)

// Compile-time check to ensure Client implements pkgrpc.EthClient interface.
var _ pkgrpc.EthClient = (*Client)(nil)

const maxHeaderBatch = 100

// Client wraps the go-ethereum clients. Every call is retried with exponential backoff
// according to the retry config and recorded in the RPC metrics.
type Client struct {
	eth   *ethclient.Client
	rpc   *rpc.Client
	retry *config.RetryConfig
	log   *logger.Logger
}

// NewClient creates a new RPC client connected to the given endpoint.
// A nil retry config executes every call once.
func NewClient(ctx context.Context, endpoint string, retry *config.RetryConfig, log *logger.Logger) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}

	return newClient(rpcClient, retry, log), nil
}

func newClient(rpcClient *rpc.Client, retry *config.RetryConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Client{
		eth:   ethclient.NewClient(rpcClient),
		rpc:   rpcClient,
		retry: retry,
		log:   log,
	}
}

// Close closes the RPC client connection.
func (c *Client) Close() {
	c.eth.Close()
}

// call runs fn under the retry policy and records request metrics for method.
func (c *Client) call(ctx context.Context, method string, fn func() error) error {
	start := time.Now()

	err := retryWithBackoff(ctx, c.retry, method, func() error {
		err := fn()
		if err != nil {
			c.log.Debugf("%s attempt failed: %v", method, err)
		}
		return err
	})

	observeCall(method, start, err)

	return err
}

// ChainID returns the chain id reported by the node.
func (c *Client) ChainID(ctx context.Context) (uint64, error) {
	var id *big.Int
	err := c.call(ctx, "eth_chainId", func() (err error) {
		id, err = c.eth.ChainID(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	return id.Uint64(), nil
}

// GetLogs retrieves logs matching the given filter query.
func (c *Client) GetLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	var logs []types.Log
	err := c.call(ctx, "eth_getLogs", func() (err error) {
		logs, err = c.eth.FilterLogs(ctx, query)
		return err
	})
	if err == nil {
		logsPerCall.Observe(float64(len(logs)))
	}

	return logs, err
}

func (c *Client) headerByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	var header *types.Header
	err := c.call(ctx, "eth_getBlockByNumber", func() (err error) {
		header, err = c.eth.HeaderByNumber(ctx, number)
		return err
	})

	return header, err
}

// GetBlockHeader retrieves the header for a specific block number.
func (c *Client) GetBlockHeader(ctx context.Context, blockNum uint64) (*types.Header, error) {
	return c.headerByNumber(ctx, new(big.Int).SetUint64(blockNum))
}

// GetLatestBlockHeader retrieves the latest block header.
func (c *Client) GetLatestBlockHeader(ctx context.Context) (*types.Header, error) {
	return c.headerByNumber(ctx, nil)
}

// GetFinalizedBlockHeader retrieves the finalized block header.
func (c *Client) GetFinalizedBlockHeader(ctx context.Context) (*types.Header, error) {
	return c.headerByNumber(ctx, big.NewInt(int64(rpc.FinalizedBlockNumber)))
}

// GetSafeBlockHeader retrieves the safe block header.
func (c *Client) GetSafeBlockHeader(ctx context.Context) (*types.Header, error) {
	return c.headerByNumber(ctx, big.NewInt(int64(rpc.SafeBlockNumber)))
}

// BatchGetBlockHeaders retrieves headers for multiple block numbers, at most maxHeaderBatch per batch call.
func (c *Client) BatchGetBlockHeaders(ctx context.Context, blockNums []uint64) ([]*types.Header, error) {
	headers := make([]*types.Header, 0, len(blockNums))

	for i := 0; i < len(blockNums); i += maxHeaderBatch {
		chunk := blockNums[i:min(i+maxHeaderBatch, len(blockNums))]

		results := make([]*types.Header, len(chunk))
		batch := make([]rpc.BatchElem, len(chunk))

		err := c.call(ctx, "eth_getBlockByNumber_batch", func() error {
			for j, blockNum := range chunk {
				results[j] = nil
				batch[j] = rpc.BatchElem{
					Method: "eth_getBlockByNumber",
					Args:   []any{toBlockNumArg(blockNum), false},
					Result: &results[j],
				}
			}

			if err := c.rpc.BatchCallContext(ctx, batch); err != nil {
				return err
			}

			for j, elem := range batch {
				if elem.Error != nil {
					return fmt.Errorf("block %d: %w", chunk[j], elem.Error)
				}
				if results[j] == nil {
					return fmt.Errorf("block %d: %w", chunk[j], ethereum.NotFound)
				}
			}

			return nil
		})
		if err != nil {
			return nil, err
		}

		headers = append(headers, results...)
	}

	return headers, nil
}

// CallContract executes eth_call at the given block.
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNum *big.Int) ([]byte, error) {
	var out []byte
	err := c.call(ctx, "eth_call", func() (err error) {
		out, err = c.eth.CallContract(ctx, msg, blockNum)
		return err
	})

	return out, err
}

// EstimateGas executes eth_estimateGas.
func (c *Client) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	var gas uint64
	err := c.call(ctx, "eth_estimateGas", func() (err error) {
		gas, err = c.eth.EstimateGas(ctx, msg)
		return err
	})

	return gas, err
}

// BalanceAt executes eth_getBalance at the given block.
func (c *Client) BalanceAt(ctx context.Context, account ethcommon.Address, blockNum *big.Int) (*big.Int, error) {
	var balance *big.Int
	err := c.call(ctx, "eth_getBalance", func() (err error) {
		balance, err = c.eth.BalanceAt(ctx, account, blockNum)
		return err
	})

	return balance, err
}

// StorageAt executes eth_getStorageAt at the given block.
func (c *Client) StorageAt(ctx context.Context, account ethcommon.Address, key ethcommon.Hash,
	blockNum *big.Int) ([]byte, error) {
	var value []byte
	err := c.call(ctx, "eth_getStorageAt", func() (err error) {
		value, err = c.eth.StorageAt(ctx, account, key, blockNum)
		return err
	})

	return value, err
}

// CodeAt executes eth_getCode at the given block.
func (c *Client) CodeAt(ctx context.Context, account ethcommon.Address, blockNum *big.Int) ([]byte, error) {
	var code []byte
	err := c.call(ctx, "eth_getCode", func() (err error) {
		code, err = c.eth.CodeAt(ctx, account, blockNum)
		return err
	})

	return code, err
}

// toBlockNumArg converts a block number to hex format.
func toBlockNumArg(blockNum uint64) string {
	return fmt.Sprintf("0x%x", blockNum)
}
