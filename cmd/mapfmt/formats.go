package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatsCommand(pluginFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the formats registered by the loaded plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := newHost(*pluginFiles)
			if err != nil {
				return err
			}

			names := reg.Names()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no formats registered")
				return nil
			}
			for _, name := range names {
				f, _ := reg.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-12s %s\n",
					name, f.Capabilities(), f.NameFilter())
			}
			return nil
		},
	}
}
