// Command vecadd prints a small vector addition example: a fixed vector and a
// dynamic vector are built, printed, and added.
//
// It takes no arguments and exits 0 on success.
//
// Flags:
//
//	-v, --verbose: debug logging on stderr
//	    --color:   color the banner
//
// Env:
//
//	VECADD_DEBUG=1 behaves like --verbose.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CK6170/vecadd-go/internal/example"
	"github.com/CK6170/vecadd-go/internal/logging"
	"github.com/CK6170/vecadd-go/ui"
)

// App version variables. Set these at build time with -ldflags if desired.
var (
	AppVersion = "dev"
	AppBuild   = "local"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		verbose bool
		color   bool
		logger  *zap.Logger
	)
	cmd := &cobra.Command{
		Use:           "vecadd",
		Short:         "Build two small vectors, print them and add them",
		Version:       strings.TrimSpace(fmt.Sprintf("%s [build %s]", AppVersion, AppBuild)),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("VECADD_DEBUG") == "1" {
				verbose = true
			}
			logger = logging.New(ui.NewRedWriter(stderr), verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("vecadd starting", zap.String("version", cmd.Version))
			return example.Run(ui.Printer{W: stdout, Color: color}, logger)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	cmd.Flags().BoolVar(&color, "color", false, "color the banner with ANSI escapes")
	return cmd
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(ui.NewRedWriter(os.Stderr), "Error:", err)
		os.Exit(1)
	}
}
