package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

// execute runs the CLI with args and flushes telemetry whatever the outcome.
func execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	a := &app{out: out, errOut: errOut}
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return errors.Join(err, a.teardown(ctx))
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Query the Untappd API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (default: ./untappd.yml or $UNTAPPD_CONFIG)")
	flags.BoolVar(&a.dryRun, "dry-run", false, "print the request instead of sending it")

	root.AddCommand(newSearchCmd(a), newVersionCmd(a))
	return root
}
