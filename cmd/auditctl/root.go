package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/safety-audits/internal/app"
	"github.com/heartmarshall/safety-audits/internal/config"
	"github.com/heartmarshall/safety-audits/internal/service/audit"
)

// env holds what the subcommands share once the root command has connected.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	backends *app.Backends
	svc      *audit.Service
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "auditctl",
		Short:         "Operate the safety audit backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.connect(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.backends != nil {
				e.backends.Close()
			}
		},
	}

	root.AddCommand(
		newSearchCmd(e),
		newGetCmd(e),
		newSubmitCmd(e),
		newProgressCmd(e),
		newBucketCmd(e),
	)
	return root
}

func (e *env) connect(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = app.NewLogger(cfg.Log)

	e.backends, err = app.Connect(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	e.svc = app.NewAuditService(e.logger, cfg, e.backends)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
