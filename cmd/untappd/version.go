package main

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/kbukum/untappd/api"
	"github.com/kbukum/untappd/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()
			switch output {
			case "json":
				data, err := api.DefaultCodec.MarshalIndent(info)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, string(data))
				return err
			case "short":
				_, err := fmt.Fprintln(a.out, info.Version)
				return err
			case "text":
				t := uitable.New()
				t.RightAlign(0)
				t.Separator = " "
				t.AddRow("version:", info.Version)
				if info.GitCommit != "" {
					t.AddRow("commit:", info.GitCommit)
				}
				if !info.BuildDate.IsZero() {
					t.AddRow("built:", info.BuildDate.UTC().Format("2006-01-02T15:04:05Z"))
				}
				t.AddRow("go:", info.GoVersion)
				t.AddRow("user agent:", version.UserAgent())
				_, err := fmt.Fprintln(a.out, t)
				return err
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or short")
	return cmd
}
