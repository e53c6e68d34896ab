package main

import (
	"fmt"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/goran-ethernal/ChainCache/internal/common"
	"github.com/goran-ethernal/ChainCache/pkg/cache"
	pkgconfig "github.com/goran-ethernal/ChainCache/pkg/config"
	"github.com/goran-ethernal/ChainCache/pkg/ranges"
)

// queryFlags are the flags shared by logs and coverage.
type queryFlags struct {
	address string
	topic0s []string
	from    string
	to      string
	network string
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.address, "address", "", "contract address")
	cmd.Flags().StringSliceVar(&f.topic0s, "topic0", nil, "event signature hash, repeatable")
	cmd.Flags().StringVar(&f.from, "from", "", "first block, decimal or hex")
	cmd.Flags().StringVar(&f.to, "to", "", "last block, decimal or hex")
	cmd.Flags().StringVar(&f.network, "network", "", "network name or chain id, defaults to the node's chain")

	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

// query builds a LogQuery. resolve maps the network flag to a chain id.
func (f *queryFlags) query(resolve func(ref string) (uint64, error)) (cache.LogQuery, error) {
	var q cache.LogQuery

	if !ethcommon.IsHexAddress(f.address) {
		return q, fmt.Errorf("%w: invalid address %q", cache.ErrInvalidQuery, f.address)
	}
	q.Address = ethcommon.HexToAddress(f.address)

	for _, t := range f.topic0s {
		t = strings.TrimSpace(t)
		if len(t) != 2+2*ethcommon.HashLength || !strings.HasPrefix(t, "0x") {
			return q, fmt.Errorf("%w: invalid topic0 %q", cache.ErrInvalidQuery, t)
		}
		q.Topic0s = append(q.Topic0s, ethcommon.HexToHash(t))
	}

	var err error
	if q.FromBlock, err = parseBlockFlag("from", f.from); err != nil {
		return q, err
	}
	if q.ToBlock, err = parseBlockFlag("to", f.to); err != nil {
		return q, err
	}

	if f.network != "" {
		if q.ChainID, err = resolve(f.network); err != nil {
			return q, err
		}
	}

	return q, nil
}

func parseBlockFlag(name, value string) (uint64, error) {
	v, err := common.ParseBlockNumber(value)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid --%s %q", ranges.ErrInvalidArgument, name, value)
	}
	return v, nil
}

var (
	logsFlags     queryFlags
	coverageFlags queryFlags

	chunkFrom string
	chunkTo   string
	chunkSize uint64
	chunkMode string
	chunkMax  uint64
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Fetch logs of a contract, filling uncached block ranges from the node",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		q, err := logsFlags.query(a.networks.ChainID)
		if err != nil {
			return err
		}

		logs, err := a.logs.GetLogs(cmd.Context(), q)
		if err != nil {
			return err
		}

		return printJSON(cmd, logs)
	},
}

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Show the cached ranges, the gaps and the eth_getLogs calls a query would make",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		q, err := coverageFlags.query(a.networks.ChainID)
		if err != nil {
			return err
		}

		plan, err := a.logs.Plan(cmd.Context(), q)
		if err != nil {
			return err
		}

		return printJSON(cmd, plan)
	},
}

var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "Split a block range into chunks without touching the node or the cache",
	Example: `  chaincache chunks --from 390 --to 710 --size 100 --mode aligned-trimmed
  chaincache chunks --from 0x0 --to 0xff --size 64 --mode index`,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseBlockFlag("from", chunkFrom)
		if err != nil {
			return err
		}
		to, err := parseBlockFlag("to", chunkTo)
		if err != nil {
			return err
		}
		mode, err := ranges.ParseChunkMode(chunkMode)
		if err != nil {
			return err
		}

		count, err := ranges.CountChunks(from, to, chunkSize, mode)
		if err != nil {
			return err
		}
		if count > chunkMax {
			return fmt.Errorf("%w: range needs %d chunks, at most %d are allowed (--max-chunks)",
				ranges.ErrInvalidArgument, count, chunkMax)
		}

		chunks, err := ranges.RangeToChunks(from, to, chunkSize, mode)
		if err != nil {
			return err
		}

		return printJSON(cmd, chunks)
	},
}

func init() {
	logsFlags.register(logsCmd)
	coverageFlags.register(coverageCmd)

	chunksCmd.Flags().StringVar(&chunkFrom, "from", "", "first block, decimal or hex")
	chunksCmd.Flags().StringVar(&chunkTo, "to", "", "last block, decimal or hex")
	chunksCmd.Flags().Uint64Var(&chunkSize, "size", 2000, "maximum blocks per chunk")
	chunksCmd.Flags().StringVar(&chunkMode, "mode", ranges.ModeDefault.String(), "default, aligned, aligned-trimmed or index")
	chunksCmd.Flags().Uint64Var(&chunkMax, "max-chunks", pkgconfig.DefaultMaxChunksPerRequest, "refuse ranges needing more chunks")
	_ = chunksCmd.MarkFlagRequired("from")
	_ = chunksCmd.MarkFlagRequired("to")
}
