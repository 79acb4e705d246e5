package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/watchdash/core"
	"github.com/jask/watchdash/internal/config"
	"github.com/jask/watchdash/internal/providers"
)

type rootOptions struct {
	configPath   string
	providersDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "watchdash",
		Short:         "Terminal dashboard for choosing deploy providers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			_, err = runDashboard(cfg, false)
			return err
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/watchdash/config.toml)")
	root.PersistentFlags().StringVar(&opts.providersDir, "providers-dir", "", "providers directory (overrides config)")

	root.AddCommand(newPickCmd(opts), newProvidersCmd(opts))
	return root
}

func (o *rootOptions) load() (config.Config, error) {
	if o.configPath != "" {
		if err := os.Setenv("WATCHDASH_CONFIG", o.configPath); err != nil {
			return config.Config{}, fmt.Errorf("set config path: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if dir := strings.TrimSpace(o.providersDir); dir != "" {
		cfg.Providers.Dir = dir
	}
	return cfg, nil
}

func newPickCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Open the provider picker and print the chosen provider id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			result, err := runDashboard(cfg, true)
			if err != nil {
				return err
			}
			sel, ok := result.(core.ProviderSelected)
			if !ok {
				return errPickCancelled
			}
			fmt.Fprintln(cmd.OutOrStdout(), sel.ID)
			return nil
		},
	}
}

func newProvidersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Inspect the providers directory",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return listProviders(cmd, cfg.Providers.Dir)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return showProvider(cmd, cfg.Providers.Dir, args[0])
		},
	})
	return cmd
}

func listProviders(cmd *cobra.Command, dir string) error {
	ids := providers.List(dir)
	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintf(out, "No providers found in:\n%s\n", dir)
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, id := range ids {
		m, err := providers.Load(id, dir)
		if err != nil {
			fmt.Fprintf(tw, "%s\t%s\t(invalid manifest: %v)\n", id, providers.Humanize(id), err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", id, providers.DisplayName(id, dir), m.Description)
	}
	return tw.Flush()
}

func showProvider(cmd *cobra.Command, dir, id string) error {
	m, err := providers.Load(id, dir)
	if err != nil {
		if errors.Is(err, providers.ErrUnknownProvider) {
			if guess, ok := providers.Suggest(id, providers.List(dir)); ok {
				return fmt.Errorf("%w (did you mean %q?)", err, guess)
			}
		}
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "id:          %s\n", id)
	fmt.Fprintf(out, "name:        %s\n", providers.DisplayName(id, dir))
	if m.Description != "" {
		fmt.Fprintf(out, "description: %s\n", m.Description)
	}
	return nil
}
