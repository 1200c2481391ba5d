package cmd

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"assettracking/internal/config"
	"assettracking/internal/core/container"
	"assettracking/internal/core/logger"
	"assettracking/internal/core/routes"
	"assettracking/internal/database"
	"assettracking/internal/presentation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) init(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	a.cfg = cfg
	a.logger = log
	return nil
}

// connect opens the database and builds the application container.
func (a *app) connect(ctx context.Context) (*container.Container, *sql.DB, error) {
	if err := a.cfg.RequireDatabase(); err != nil {
		return nil, nil, err
	}

	db, err := database.NewPostgresConnection(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("Connected to the database")

	c, err := container.NewAppContainer(db, a.cfg, a.logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return c, db, nil
}

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.RequireDatabase(); err != nil {
				return err
			}
			migrationDir, _ := cmd.Flags().GetString("dir")

			if err := database.RunMigrations(a.cfg.DatabaseURL, migrationDir, a.logger); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("dir", "migrations", "Directory containing the migration files")

	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo offices and assets into empty tables.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, db, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			return c.Seeder.Seed(cmd.Context(), time.Now().UTC())
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print every asset per office with its local value and remaining life.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			at, _ := cmd.Flags().GetString("at")
			noColor, _ := cmd.Flags().GetBool("no-color")

			now, err := reportTime(at, time.Now)
			if err != nil {
				return err
			}

			// File output is buffered so a failed run leaves an existing report untouched.
			var buf bytes.Buffer
			var out io.Writer = cmd.OutOrStdout()
			if output != "" {
				out = &buf
			}

			sink, err := presentation.NewSink(format, out, !noColor)
			if err != nil {
				return err
			}

			c, db, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := c.ReportService.Publish(cmd.Context(), now, sink); err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("write output file: %w", err)
				}
				a.logger.Info("Report written", zap.String("path", output), zap.Int("bytes", buf.Len()))
			}
			return nil
		},
	}
	cmd.Flags().String("format", presentation.FormatConsole, "Output format: console, csv or xlsx")
	cmd.Flags().String("output", "", "Write the report to this file instead of stdout")
	cmd.Flags().String("at", "", "Evaluate remaining life at this RFC3339 time instead of now")
	cmd.Flags().Bool("no-color", false, "Disable colored console output")

	return cmd
}

// reportTime returns the evaluation time of a report in UTC, taken from --at
// when given.
func reportTime(at string, clock func() time.Time) (time.Time, error) {
	if at == "" {
		return clock().UTC(), nil
	}

	parsed, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at value: %w", err)
	}
	return parsed.UTC(), nil
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve offices, assets and the report over HTTP.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, db, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			server := &http.Server{
				Addr:    a.cfg.AppHost,
				Handler: routes.NewRouter(c),
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("Starting server", zap.String("addr", a.cfg.AppHost))
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				a.logger.Info("Shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return server.Shutdown(shutdownCtx)
			}
		},
	}
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "assettracking",
		Short:             "Office hardware asset tracking",
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.AddCommand(newMigrateCmd(a), newSeedCmd(a), newReportCmd(a), newServeCmd(a))

	return rootCmd
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
