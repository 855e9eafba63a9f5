package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func defaultAddr() string {
	if v := os.Getenv("SETTINGSD_URL"); v != "" {
		return v
	}
	return "http://localhost:8090"
}

// buildRootCmd constructs the Cobra command tree wired to the HTTP client.
func buildRootCmd() *cobra.Command {
	var addr string
	root := &cobra.Command{
		Use:           "settingsctl",
		Short:         "Inspect and modify settingsd over its HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&addr, "addr", defaultAddr(), "Base URL of the settingsd daemon (defaults SETTINGSD_URL)")

	get := &cobra.Command{
		Use:     "get",
		Short:   "Print the current settings",
		Example: "  settingsctl get",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newClient(addr).getSettings(cmd.OutOrStdout())
		},
	}

	set := &cobra.Command{
		Use:     "set <key> <value>",
		Short:   "Update one settings field",
		Example: "  settingsctl set temperature 0.2\n  settingsctl set userSystemPrompt \"be terse\"",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newClient(addr).updateKey(cmd.OutOrStdout(), args[0], parseValue(args[1]))
		},
	}

	reset := &cobra.Command{
		Use:     "reset",
		Short:   "Restore defaults and re-enable all built-in models",
		Example: "  settingsctl reset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newClient(addr).reset(cmd.OutOrStdout())
		},
	}

	var embeddings bool
	models := &cobra.Command{
		Use:     "models",
		Short:   "List the active model entries",
		Example: "  settingsctl models\n  settingsctl models --embeddings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newClient(addr).listModels(cmd.OutOrStdout(), embeddings)
		},
	}
	models.Flags().BoolVar(&embeddings, "embeddings", false, "List embedding models instead of chat models")

	prompt := &cobra.Command{
		Use:     "prompt",
		Short:   "Print the effective system prompt",
		Example: "  settingsctl prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newClient(addr).prompt(cmd.OutOrStdout())
		},
	}

	watch := &cobra.Command{
		Use:     "watch",
		Short:   "Stream settings change events until interrupted",
		Example: "  settingsctl watch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return newClient(addr).watch(cmd.Context(), cmd.OutOrStdout())
		},
	}

	root.AddCommand(get, set, reset, models, prompt, watch)
	return root
}

// parseValue turns a CLI argument into the JSON value shape the daemon
// expects: numbers and booleans when they parse as such, strings otherwise.
func parseValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return s
}
