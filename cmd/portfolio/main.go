package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ayasaad.dev/internal/config"
	"ayasaad.dev/internal/mount"
	"ayasaad.dev/web"
)

type app struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
	logger   *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Aya Saad's design portfolio",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", config.DefaultPath, "config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "debug, info, warn or error")

	root.AddCommand(newServeCmd(a), newRenderCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(a.logLevel))); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	cfg, err := config.Load(a.cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// shell loads the configured host document, or the embedded one
func (a *app) shell() (*mount.Shell, error) {
	if a.cfg.ShellPath == "" {
		return mount.NewShell(web.Index), nil
	}
	return mount.LoadShell(a.cfg.ShellPath)
}

// mount returns a Root over the shell, failing when the container is missing
func (a *app) mount(shell *mount.Shell) (*mount.Root, error) {
	return mount.New(shell, a.cfg.MountID, a.logger)
}
