package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stackprobe/stackprobe-cli/internal/analyzer"
	"github.com/stackprobe/stackprobe-cli/internal/api"
	"github.com/stackprobe/stackprobe-cli/internal/detect"
	"github.com/stackprobe/stackprobe-cli/internal/fetch"
	"github.com/stackprobe/stackprobe-cli/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run stackprobe as a REST API service",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		authToken, _ := cmd.Flags().GetString("auth-token")
		shutdownTimeout, _ := cmd.Flags().GetDuration("shutdown-timeout")
		corsOrigins, _ := cmd.Flags().GetStringSlice("cors-origins")
		rateLimit, _ := cmd.Flags().GetInt("rate-limit")
		rateBurst, _ := cmd.Flags().GetInt("rate-burst")

		apiLogger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() {
			_ = apiLogger.Sync()
		}()

		catalog, err := detect.LoadCatalog()
		if err != nil {
			return fmt.Errorf("load signature catalog: %w", err)
		}

		opts := []detect.EngineOption{detect.WithLogger(apiLogger.Sugar())}
		if cliConfig.AI.Enabled && cliConfig.AI.APIKey != "" {
			gem, err := analyzer.NewGemini(cmd.Context(), cliConfig.AI.APIKey, cliConfig.AI.Model)
			if err != nil {
				return fmt.Errorf("initialize AI analyzer: %w", err)
			}
			defer func() { _ = gem.Close() }()
			opts = append(opts,
				detect.WithAnalyzer(gem),
				detect.WithAITimeout(time.Duration(cliConfig.AI.TimeoutSecs)*time.Second),
			)
		}
		engine := detect.NewEngine(catalog, opts...)

		repo, err := store.NewRepository(resultsDir)
		if err != nil {
			return err
		}

		server := api.NewServer(api.Config{
			Analyze: &analyzeAPIService{
				engine:  engine,
				fetcher: fetch.NewClient(time.Duration(cliConfig.Audit.TimeoutSecs) * time.Second),
				repo:    repo,
			},
			Reports:     repo,
			AuthToken:   authToken,
			Logger:      apiLogger,
			CORSOrigins: corsOrigins,
			RateLimit:   rateLimit,
			RateBurst:   rateBurst,
		})

		httpServer := &http.Server{
			Addr:         addr,
			Handler:      server,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("%s API server listening on %s (results dir: %s)\n", colorInfo("→"), addr, resultsDir)
			fmt.Printf("%s Press Ctrl+C to gracefully shutdown\n", colorInfo("→"))
			serverErrors <- httpServer.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
		case sig := <-shutdown:
			fmt.Printf("\n%s Received signal %v, initiating graceful shutdown...\n", colorInfo("→"), sig)

			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				if closeErr := httpServer.Close(); closeErr != nil {
					return fmt.Errorf("failed to gracefully shutdown server: %w (close error: %v)", err, closeErr)
				}
				return fmt.Errorf("failed to gracefully shutdown server: %w", err)
			}

			fmt.Printf("%s Server shutdown complete\n", colorInfo("✓"))
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Address for the API server")
	serveCmd.Flags().String("auth-token", "", "Optional bearer token for API requests")
	serveCmd.Flags().Duration("shutdown-timeout", 30*time.Second, "Graceful shutdown timeout")
	serveCmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (empty = allow all)")
	serveCmd.Flags().Int("rate-limit", 10, "Rate limit per IP (requests/second, 0 = disabled)")
	serveCmd.Flags().Int("rate-burst", 20, "Rate limit burst size")
}

// analyzeAPIService runs the full fetch-and-detect cycle for API callers and
// persists each successful report.
type analyzeAPIService struct {
	engine  *detect.Engine
	fetcher detect.Fetcher
	repo    *store.Repository
}

func (s *analyzeAPIService) Analyze(ctx context.Context, target string) (*detect.AnalysisReport, error) {
	doc, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	report := s.engine.Analyze(ctx, doc)
	if _, err := s.repo.Save(&report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	return &report, nil
}
