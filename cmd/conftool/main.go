// conftool inspects configuration property files with the conf package.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/conf"
)

var rootCmd = &cobra.Command{
	Use:           "conftool",
	Short:         "Inspect configuration property files",
	Long:          "conftool loads TOML, JSON or YAML configuration files, flattens them\nto dot-notation keys and prints the resolved key/value pairs.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Load a config file and print its flattened key/value pairs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		cfg, err := conf.NewFromFile(args[0], conf.Options{Logger: logger})
		if err != nil {
			return err
		}

		var keys []string
		pairs := make(map[string]string)
		cfg.Range(func(key, value string) bool {
			keys = append(keys, key)
			pairs[key] = value
			return true
		})
		sort.Strings(keys)

		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, pairs[key])
		}
		return nil
	},
}

var durationCmd = &cobra.Command{
	Use:   "duration <text>",
	Short: "Parse a duration string and print its length in milliseconds",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := conf.ParseDurationMs(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", ms)
		return nil
	},
}

func main() {
	rootCmd.AddCommand(dumpCmd, durationCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
