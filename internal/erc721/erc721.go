package erc721

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ErrUnexpectedOutput is returned when a call result does not decode to the type the getter returns.
var ErrUnexpectedOutput = errors.New("unexpected call output")

const tokenABI = `[
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getApproved","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"operator","type":"address"}],"outputs":[{"name":"","type":"bool"}]}
]`

var parsedABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(tokenABI))
	if err != nil {
		panic(fmt.Sprintf("invalid erc721 abi: %v", err))
	}
	return parsed
}()

// Caller executes eth_call against a node or a call cache.
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNum *big.Int) ([]byte, error)
}

// Reader reads ERC-721 token state. A nil block reads the latest state.
type Reader struct {
	caller Caller
	token  common.Address
}

// NewReader creates a reader for the token contract at token.
func NewReader(caller Caller, token common.Address) *Reader {
	return &Reader{caller: caller, token: token}
}

// Token returns the contract address read by r.
func (r *Reader) Token() common.Address {
	return r.token
}

// TotalSupply returns the number of tokens in existence.
func (r *Reader) TotalSupply(ctx context.Context, block *big.Int) (*big.Int, error) {
	return call[*big.Int](ctx, r, block, "totalSupply")
}

// OwnerOf returns the owner of tokenID.
func (r *Reader) OwnerOf(ctx context.Context, tokenID *big.Int, block *big.Int) (common.Address, error) {
	return call[common.Address](ctx, r, block, "ownerOf", tokenID)
}

// BalanceOf returns the number of tokens held by owner.
func (r *Reader) BalanceOf(ctx context.Context, owner common.Address, block *big.Int) (*big.Int, error) {
	return call[*big.Int](ctx, r, block, "balanceOf", owner)
}

// GetApproved returns the address approved to transfer tokenID.
func (r *Reader) GetApproved(ctx context.Context, tokenID *big.Int, block *big.Int) (common.Address, error) {
	return call[common.Address](ctx, r, block, "getApproved", tokenID)
}

// IsApprovedForAll reports whether operator may transfer every token of owner.
func (r *Reader) IsApprovedForAll(ctx context.Context, owner, operator common.Address, block *big.Int) (bool, error) {
	return call[bool](ctx, r, block, "isApprovedForAll", owner, operator)
}

func call[T any](ctx context.Context, r *Reader, block *big.Int, method string, args ...any) (T, error) {
	var zero T

	data, err := parsedABI.Pack(method, args...)
	if err != nil {
		return zero, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	out, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &r.token, Data: data}, block)
	if err != nil {
		return zero, fmt.Errorf("failed to call %s on %s: %w", method, r.token.Hex(), err)
	}

	values, err := parsedABI.Unpack(method, out)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrUnexpectedOutput, method, err)
	}
	if len(values) != 1 {
		return zero, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, method, len(values))
	}

	v, ok := values[0].(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T", ErrUnexpectedOutput, method, values[0])
	}

	return v, nil
}
