// Command csvplot renders CSV column charts without a window: it reports
// how the columns were typed and writes charts to PNG, JPEG or SVG files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EntangledQuantum/CSV-Viewer/src/diag"
	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

type rootFlags struct {
	logLevel  string
	delimiter string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:          "csvplot",
		Short:        "Inspect and plot CSV columns from the command line",
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !diag.SetLogLevel(rf.logLevel) {
				return fmt.Errorf("invalid log level: %s (must be debug, info, warn or error)", rf.logLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&rf.delimiter, "delimiter", ",", "Field delimiter (single character)")

	root.AddCommand(newColumnsCmd(rf), newRenderCmd(rf))
	return root
}

func (rf *rootFlags) loadTable(path string) (*table.Table, error) {
	opts := table.DefaultOptions()
	d := []rune(rf.delimiter)
	if len(d) != 1 {
		return nil, fmt.Errorf("invalid delimiter %q: must be a single character", rf.delimiter)
	}
	opts.Delimiter = d[0]
	tbl, err := table.LoadFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}
	return tbl, nil
}
