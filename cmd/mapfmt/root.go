package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilewright/mapformat/format"
	"github.com/tilewright/mapformat/script"
)

func newRootCommand() *cobra.Command {
	var (
		pluginFiles []string
		verbose     bool
	)

	rootCmd := &cobra.Command{
		Use:   "mapfmt",
		Short: "Convert tile maps with script-defined file formats",
		Long: `mapfmt hosts JavaScript format plugins and uses them to inspect and
convert tile map files. Plugins register formats with registerMapFormat;
see the script package documentation for the descriptor contract.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().StringArrayVarP(&pluginFiles, "plugin", "p", nil,
		"JavaScript format plugin file (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(newFormatsCommand(&pluginFiles))
	rootCmd.AddCommand(newConvertCommand(&pluginFiles))

	return rootCmd
}

// newHost builds a script environment, installs the format bindings,
// and runs every plugin file. All format operations stay on the calling
// goroutine; the environment is not reentrant.
func newHost(pluginFiles []string) (*script.Env, *format.Registry, error) {
	env := script.NewEnv()
	reg := format.NewRegistry()
	if err := script.Install(env, reg); err != nil {
		return nil, nil, err
	}

	for _, path := range pluginFiles {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("load plugin: %w", err)
		}
		if _, err := env.RunScript(path, string(src)); err != nil {
			return nil, nil, fmt.Errorf("run plugin %s: %w", path, err)
		}
		slog.Debug("loaded plugin", "path", path)
	}

	slog.Debug("formats registered", "names", reg.Names())
	return env, reg, nil
}
