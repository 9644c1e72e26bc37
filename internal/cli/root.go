// Package cli wires configuration, logging and the collector into the
// procview command.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prabalesh/procview/internal/collector"
	"github.com/prabalesh/procview/internal/config"
	"github.com/prabalesh/procview/internal/export"
	"github.com/prabalesh/procview/internal/ui"
)

const longHelp = `
procview samples the kernel's process and counter records and shows uptime,
memory and CPU utilization, process counts and every process ordered by CPU
share. Without --output it runs an interactive view refreshed every
--interval; with --output json|yaml it prints a single snapshot and exits.

CPU figures are averages over the time since boot. The interactive header
also shows the system rate over the last interval.`

// newRootCmd builds the procview command with its own flag set.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "procview",
		Short:         "Inspect processes, CPU and memory of a Linux host",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "procview:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sc := newStatsCollector(afero.NewOsFs(), cfg, log)

	if !cfg.Interactive() {
		stats := sc.Refresh()
		stats.Procs = stats.Procs.Top(cfg.Limit)
		return export.Write(cmd.OutOrStdout(), cfg.Output, stats)
	}

	log.Info("starting interactive view", zap.Duration("interval", cfg.Interval))
	p := tea.NewProgram(ui.NewApp(sc, cfg.Interval, cfg.Limit), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running interactive view")
	}
	return nil
}

func newStatsCollector(fs afero.Fs, cfg config.Config, log *zap.Logger) *collector.StatsCollector {
	src := collector.NewSource(fs,
		collector.WithProcRoot(cfg.ProcRoot),
		collector.WithOSRelease(cfg.OSRelease),
		collector.WithPasswd(cfg.Passwd),
		collector.WithLogger(log.Named("source")))
	return collector.NewStatsCollector(src, collector.ClockTicks(), log)
}
