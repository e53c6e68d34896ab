package erc721

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ChainCache/internal/rpc/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	bayc     = common.HexToAddress("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D")
	holder   = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	operator = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func packOutput(t *testing.T, method string, values ...any) []byte {
	t.Helper()

	out, err := parsedABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)

	return out
}

func callFor(t *testing.T, method string, args ...any) interface{} {
	t.Helper()

	data, err := parsedABI.Pack(method, args...)
	require.NoError(t, err)

	return mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return msg.To != nil && *msg.To == bayc && string(msg.Data) == string(data)
	})
}

func TestReader(t *testing.T) {
	ctx := context.Background()
	block := big.NewInt(18_000_000)
	tokenID := big.NewInt(42)

	client := mocks.NewEthClient(t)
	r := NewReader(client, bayc)
	require.Equal(t, bayc, r.Token())

	client.EXPECT().CallContract(mock.Anything, callFor(t, "totalSupply"), block).
		Return(packOutput(t, "totalSupply", big.NewInt(10_000)), nil).Once()
	client.EXPECT().CallContract(mock.Anything, callFor(t, "ownerOf", tokenID), block).
		Return(packOutput(t, "ownerOf", holder), nil).Once()
	client.EXPECT().CallContract(mock.Anything, callFor(t, "balanceOf", holder), block).
		Return(packOutput(t, "balanceOf", big.NewInt(3)), nil).Once()
	client.EXPECT().CallContract(mock.Anything, callFor(t, "getApproved", tokenID), block).
		Return(packOutput(t, "getApproved", operator), nil).Once()
	client.EXPECT().CallContract(mock.Anything, callFor(t, "isApprovedForAll", holder, operator), block).
		Return(packOutput(t, "isApprovedForAll", true), nil).Once()

	supply, err := r.TotalSupply(ctx, block)
	require.NoError(t, err)
	require.Equal(t, int64(10_000), supply.Int64())

	owner, err := r.OwnerOf(ctx, tokenID, block)
	require.NoError(t, err)
	require.Equal(t, holder, owner)

	balance, err := r.BalanceOf(ctx, holder, block)
	require.NoError(t, err)
	require.Equal(t, int64(3), balance.Int64())

	approved, err := r.GetApproved(ctx, tokenID, block)
	require.NoError(t, err)
	require.Equal(t, operator, approved)

	all, err := r.IsApprovedForAll(ctx, holder, operator, block)
	require.NoError(t, err)
	require.True(t, all)
}

func TestReader_LatestBlock(t *testing.T) {
	client := mocks.NewEthClient(t)
	r := NewReader(client, bayc)

	client.EXPECT().CallContract(mock.Anything, callFor(t, "totalSupply"), (*big.Int)(nil)).
		Return(packOutput(t, "totalSupply", big.NewInt(1)), nil).Once()

	supply, err := r.TotalSupply(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), supply.Int64())
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name      string
		output    []byte
		callErr   error
		expectErr error
		contains  string
	}{
		{
			name:      "empty output from a non contract address",
			output:    []byte{},
			expectErr: ErrUnexpectedOutput,
		},
		{
			name:      "truncated output",
			output:    []byte{0x01, 0x02},
			expectErr: ErrUnexpectedOutput,
		},
		{
			name:     "call error",
			callErr:  errors.New("execution reverted: ERC721: invalid token ID"),
			contains: "failed to call ownerOf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewEthClient(t)
			r := NewReader(client, bayc)

			client.EXPECT().CallContract(mock.Anything, mock.Anything, mock.Anything).Return(tt.output, tt.callErr).Once()

			_, err := r.OwnerOf(context.Background(), big.NewInt(1), nil)
			require.Error(t, err)
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
			}
			if tt.contains != "" {
				require.ErrorContains(t, err, tt.contains)
			}
		})
	}
}
