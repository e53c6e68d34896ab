package types

import (
	"context"
	"fmt"

	"github.com/goran-ethernal/ChainCache/pkg/rpc"
)

// BlockFinality selects which block is trusted not to be reorganised.
type BlockFinality string

const (
	// FinalityFinalized uses the finalized block tag
	FinalityFinalized BlockFinality = "finalized"

	// FinalitySafe uses the safe block tag
	FinalitySafe BlockFinality = "safe"

	// FinalityLatest uses the head minus a configured lag
	FinalityLatest BlockFinality = "latest"
)

// String returns the string representation of BlockFinality.
func (f BlockFinality) String() string {
	return string(f)
}

// IsValid checks if the BlockFinality value is valid.
func (f BlockFinality) IsValid() bool {
	switch f {
	case FinalityFinalized, FinalitySafe, FinalityLatest:
		return true
	default:
		return false
	}
}

// ParseBlockFinality parses a string into a BlockFinality type.
func ParseBlockFinality(s string) (BlockFinality, error) {
	f := BlockFinality(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid block finality: %s (must be one of: finalized, safe, latest)", s)
	}
	return f, nil
}

// Resolve asks the node for the number of the highest block considered final under f.
// lag only applies to FinalityLatest; a head lower than lag resolves to genesis.
func (f BlockFinality) Resolve(ctx context.Context, client rpc.EthClient, lag uint64) (uint64, error) {
	switch f {
	case FinalityFinalized:
		header, err := client.GetFinalizedBlockHeader(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get finalized block: %w", err)
		}
		return header.Number.Uint64(), nil

	case FinalitySafe:
		header, err := client.GetSafeBlockHeader(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get safe block: %w", err)
		}
		return header.Number.Uint64(), nil

	case FinalityLatest:
		header, err := client.GetLatestBlockHeader(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get latest block: %w", err)
		}
		head := header.Number.Uint64()
		if head < lag {
			return 0, nil
		}
		return head - lag, nil

	default:
		return 0, fmt.Errorf("invalid finality mode: %s", f)
	}
}
