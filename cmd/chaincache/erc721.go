package main

import (
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/goran-ethernal/ChainCache/internal/erc721"
)

var (
	erc721Token string
	erc721Block string
)

var erc721Cmd = &cobra.Command{
	Use:   "erc721",
	Short: "Read ERC-721 token state through the call cache",
}

func parseAddress(name, s string) (ethcommon.Address, error) {
	if !ethcommon.IsHexAddress(s) {
		return ethcommon.Address{}, fmt.Errorf("invalid %s address %q", name, s)
	}
	return ethcommon.HexToAddress(s), nil
}

func parseTokenID(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 0)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("invalid token id %q", s)
	}
	return id, nil
}

// erc721Run opens the app and hands the reader, the pinned block and the args to fn.
func erc721Run(fn func(cmd *cobra.Command, r *erc721.Reader, block *big.Int, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		token, err := parseAddress("token", erc721Token)
		if err != nil {
			return err
		}

		var block *big.Int
		if erc721Block != "" {
			n, err := parseBlockFlag("block", erc721Block)
			if err != nil {
				return err
			}
			block = new(big.Int).SetUint64(n)
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := fn(cmd, erc721.NewReader(a.calls, token), block, args)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}
}

func init() {
	erc721Cmd.PersistentFlags().StringVar(&erc721Token, "token", "", "ERC-721 contract address")
	erc721Cmd.PersistentFlags().StringVar(&erc721Block, "block", "", "block to read at, latest when empty")
	_ = erc721Cmd.MarkPersistentFlagRequired("token")

	erc721Cmd.AddCommand(
		&cobra.Command{
			Use:   "supply",
			Short: "Total number of tokens",
			Args:  cobra.NoArgs,
			RunE: erc721Run(func(cmd *cobra.Command, r *erc721.Reader, block *big.Int, _ []string) (any, error) {
				return r.TotalSupply(cmd.Context(), block)
			}),
		},
		&cobra.Command{
			Use:   "owner <token-id>",
			Short: "Owner of a token",
			Args:  cobra.ExactArgs(1),
			RunE: erc721Run(func(cmd *cobra.Command, r *erc721.Reader, block *big.Int, args []string) (any, error) {
				id, err := parseTokenID(args[0])
				if err != nil {
					return nil, err
				}
				return r.OwnerOf(cmd.Context(), id, block)
			}),
		},
		&cobra.Command{
			Use:   "balance <owner>",
			Short: "Number of tokens held by an account",
			Args:  cobra.ExactArgs(1),
			RunE: erc721Run(func(cmd *cobra.Command, r *erc721.Reader, block *big.Int, args []string) (any, error) {
				owner, err := parseAddress("owner", args[0])
				if err != nil {
					return nil, err
				}
				return r.BalanceOf(cmd.Context(), owner, block)
			}),
		},
		&cobra.Command{
			Use:   "approved <token-id>",
			Short: "Account approved to transfer a token",
			Args:  cobra.ExactArgs(1),
			RunE: erc721Run(func(cmd *cobra.Command, r *erc721.Reader, block *big.Int, args []string) (any, error) {
				id, err := parseTokenID(args[0])
				if err != nil {
					return nil, err
				}
				return r.GetApproved(cmd.Context(), id, block)
			}),
		},
		&cobra.Command{
			Use:   "approved-for-all <owner> <operator>",
			Short: "Whether an operator may transfer every token of an owner",
			Args:  cobra.ExactArgs(2),
			RunE: erc721Run(func(cmd *cobra.Command, r *erc721.Reader, block *big.Int, args []string) (any, error) {
				owner, err := parseAddress("owner", args[0])
				if err != nil {
					return nil, err
				}
				operator, err := parseAddress("operator", args[1])
				if err != nil {
					return nil, err
				}
				return r.IsApprovedForAll(cmd.Context(), owner, operator, block)
			}),
		},
	)
}
