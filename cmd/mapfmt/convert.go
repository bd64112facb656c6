package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tilewright/mapformat/format"
)

func newConvertCommand(pluginFiles *[]string) *cobra.Command {
	var options uint32

	cmd := &cobra.Command{
		Use:   "convert <source> <destination>",
		Short: "Read a map with one format and write it with another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]

			_, reg, err := newHost(*pluginFiles)
			if err != nil {
				return err
			}

			reader, err := findFormat(reg, src, format.Read)
			if err != nil {
				return err
			}
			writer, err := findFormat(reg, dst, format.Write)
			if err != nil {
				return err
			}

			slog.Debug("converting",
				"source", src, "reader", reader.ShortName(),
				"destination", dst, "writer", writer.ShortName())

			m := reader.Read(src)
			if m == nil {
				return fmt.Errorf("read %s: %s", src, reader.Error())
			}
			if !writer.Write(m, dst, format.WriteOptions(options)) {
				return fmt.Errorf("write %s: %s", dst, writer.Error())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "converted %s -> %s\n", src, dst)
			return nil
		},
	}

	cmd.Flags().Uint32Var(&options, "write-options", 0,
		"options bitmask passed through to the writing format")

	return cmd
}

// findFormat picks the registered format that supports path and has the
// wanted capability.
func findFormat(reg *format.Registry, path string, want format.Capability) (format.Format, error) {
	for _, name := range reg.Names() {
		f, ok := reg.Get(name)
		if ok && f.SupportsFile(path) && f.Capabilities().Has(want) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("no %s-capable format supports %s", want, path)
}
