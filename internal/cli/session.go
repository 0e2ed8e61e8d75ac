package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/itemcheck/internal/config"
	"github.com/roach88/itemcheck/internal/store"
)

// session is the state shared by one command invocation: resolved config,
// logger, output formatter and the open store.
type session struct {
	ctx   context.Context
	cfg   config.Config
	log   *slog.Logger
	out   *OutputFormatter
	store *store.Store
	runID string
}

// newLogger configures slog on w. Debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// openSession resolves configuration and connects to the database.
// Returned errors are already ExitErrors.
func openSession(cmd *cobra.Command, opts *RootOptions) (*session, error) {
	runID := opts.runIDs().Generate()
	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   runID,
	}
	log := newLogger(cmd.ErrOrStderr(), opts.Verbose).With("run_id", runID)

	cfg, err := opts.resolveConfig()
	if err != nil {
		return nil, fail(out, ErrCodeConfig, ExitCommandError, "invalid configuration", err)
	}

	// Use command's context if available (for signal cancellation), otherwise create one
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(ctx, cfg.DatabaseURL, store.WithLogger(log))
	if err != nil {
		return nil, fail(out, ErrCodeConnect, ExitCommandError, "failed to open database", err)
	}
	log.Info("database ready", "dialect", st.Dialect().Name)

	return &session{
		ctx:   ctx,
		cfg:   cfg,
		log:   log,
		out:   out,
		store: st,
		runID: runID,
	}, nil
}

// Close releases the database connection.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.log.Error("error closing database", "error", err)
	}
}

// bootstrap runs store.Bootstrap and maps its errors to exit codes.
// A corrupt table is a verification failure; anything else is a command error.
func (s *session) bootstrap() (store.BootstrapResult, error) {
	result, err := s.store.Bootstrap(s.ctx)
	if err == nil {
		return result, nil
	}

	var corrupt *store.CorruptTableError
	if errors.As(err, &corrupt) {
		s.log.Error("items table is corrupt", "count", corrupt.Count)
		return result, fail(s.out, ErrCodeCorruptTable, ExitFailure, "bootstrap failed", err)
	}
	return result, fail(s.out, ErrCodeBootstrap, ExitCommandError, "bootstrap failed", err)
}
