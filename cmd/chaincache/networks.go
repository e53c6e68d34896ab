package main

import (
	"errors"
	"fmt"
	"io/fs"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goran-ethernal/ChainCache/internal/logger"
	"github.com/goran-ethernal/ChainCache/internal/network"
	pkgconfig "github.com/goran-ethernal/ChainCache/pkg/config"
)

var networksCmd = &cobra.Command{
	Use:   "networks [name|chain-id]",
	Short: "List known networks or resolve one by name or chain id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var configured []pkgconfig.NetworkConfig

		// the built-in table is enough when there is no config file
		cfg, err := loadConfig()
		switch {
		case err == nil:
			configured = cfg.Networks
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}

		dir := network.NewDirectory(configured, logger.NewNopLogger())

		if len(args) == 1 {
			n, err := dir.Resolve(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, n)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CHAIN ID\tNAME\tEXPLORER")
		for _, n := range dir.All() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", n.ChainID, n.Name, n.ExplorerURL())
		}

		return w.Flush()
	},
}
