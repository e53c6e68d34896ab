package cache

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/internal/logger"
	itypes "github.com/goran-ethernal/ChainCache/internal/types"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	"github.com/goran-ethernal/ChainCache/pkg/rpc"
)

// CallCache executes eth_call and remembers results of calls pinned to finalized blocks.
// Calls that are not cacheable, or pinned above the finalized block, go straight to the node.
type CallCache struct {
	chainID  uint64
	rpc      rpc.EthClient
	store    cache.CallStore
	finality itypes.BlockFinality
	lag      uint64
	log      *logger.Logger
}

// NewCallCache creates a call cache for the chain served by client.
func NewCallCache(
	chainID uint64,
	client rpc.EthClient,
	store cache.CallStore,
	finality itypes.BlockFinality,
	lag uint64,
	log *logger.Logger,
) *CallCache {
	return &CallCache{
		chainID:  chainID,
		rpc:      client,
		store:    store,
		finality: finality,
		lag:      lag,
		log:      log.WithComponent(common.ComponentCallCache),
	}
}

// CallContract executes msg at block, serving finalized blocks from the cache.
func (c *CallCache) CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	if !cacheable(msg, block) {
		CallRequestInc("bypass")
		return c.rpc.CallContract(ctx, msg, block)
	}

	finalized, err := c.finality.Resolve(ctx, c.rpc, c.lag)
	if err != nil {
		return nil, err
	}
	if block.Uint64() > finalized {
		CallRequestInc("bypass")
		return c.rpc.CallContract(ctx, msg, block)
	}

	key := cache.CallKey{ChainID: c.chainID, To: *msg.To, Block: block.Uint64(), Data: msg.Data}

	result, found, err := c.store.GetCall(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read call cache: %w", err)
	}
	if found {
		CallRequestInc("hit")
		return result, nil
	}

	CallRequestInc("miss")

	result, err = c.rpc.CallContract(ctx, msg, block)
	if err != nil {
		return nil, err
	}

	if err := c.store.StoreCall(ctx, key, result); err != nil {
		c.log.Warnf("failed to cache call to %s at block %d: %v", msg.To.Hex(), key.Block, err)
	}

	return result, nil
}

// cacheable reports whether the result of msg depends only on its target, calldata and block.
func cacheable(msg ethereum.CallMsg, block *big.Int) bool {
	if block == nil || block.Sign() < 0 || !block.IsUint64() || msg.To == nil {
		return false
	}
	if msg.From != (ethcommon.Address{}) || (msg.Value != nil && msg.Value.Sign() != 0) {
		return false
	}

	return msg.Gas == 0 && msg.GasPrice == nil && msg.GasFeeCap == nil && msg.GasTipCap == nil
}
