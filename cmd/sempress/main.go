// Package main implements the sempress CLI for semantic content encoding.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/sempress/internal/config"
	"github.com/fyrsmithlabs/sempress/internal/encoder"
	"github.com/fyrsmithlabs/sempress/internal/engine"
	"github.com/fyrsmithlabs/sempress/internal/logging"
	"github.com/fyrsmithlabs/sempress/internal/server"
	"github.com/fyrsmithlabs/sempress/internal/telemetry"
)

var (
	configPath string
	kindFlag   string
	jsonOut    bool
	quiet      bool

	serveHost      string
	servePort      int
	serveRateLimit float64
	otelEndpoint   string
	otelInsecure   bool

	// version information (set via ldflags during build)
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sempress",
	Short: "Semantic compression of prompts, transcripts and records",
	Long: `sempress compresses natural-language content into compact token grammars
for language-model consumption. Encoding is deterministic and rule-driven;
output that fails to reduce token count falls back to the original verbatim.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML configuration file")

	encodeCmd.Flags().StringVar(&kindFlag, "kind", "prompt", "content kind: prompt, task_prompt, config_prompt, transcript")
	encodeCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full result as JSON")
	encodeCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the stats line on stderr")

	recordsCmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full result as JSON")
	recordsCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the stats line on stderr")

	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "listen host")
	serveCmd.Flags().IntVar(&servePort, "port", 8750, "listen port")
	serveCmd.Flags().Float64Var(&serveRateLimit, "rate-limit", 0, "requests per second per client (0 disables)")
	serveCmd.Flags().StringVar(&otelEndpoint, "otel-endpoint", "", "OTLP collector endpoint (empty disables telemetry export)")
	serveCmd.Flags().BoolVar(&otelInsecure, "otel-insecure", true, "use a plaintext OTLP connection (local endpoints only)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
}

// encodeCmd compresses text content from a file or stdin.
var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a prompt or transcript from a file or stdin",
	Long: `Encode text content into the compact token grammar.

Examples:
  # Encode a prompt file
  sempress encode prompt.txt

  # Encode a transcript from stdin
  cat call.txt | sempress encode --kind transcript -

  # Full result as JSON
  sempress encode --json prompt.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

// recordsCmd compresses a JSON array of records.
var recordsCmd = &cobra.Command{
	Use:   "records [file]",
	Short: "Encode a JSON array of uniform records",
	Long: `Encode structured records into the compact header/row grammar.

The input must be a JSON array of objects. Examples:

  sempress records products.json
  cat products.json | sempress records --name products -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

// serveCmd starts the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sempress HTTP server",
	Long: `Start the HTTP API exposing encode endpoints, health and metrics.

Examples:
  sempress serve
  sempress serve --port 9000 --rate-limit 50`,
	RunE: runServe,
}

var datasetName string

func init() {
	recordsCmd.Flags().StringVar(&datasetName, "name", "records", "dataset name for the output header")
}

func newEngine() (*engine.Engine, *logging.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logCfg := logging.NewDefaultConfig()
	logCfg.Format = "console"
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, nil, err
	}
	eng, err := engine.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return eng, logger, nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

// runEncode handles the encode command.
func runEncode(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	kind := encoder.Kind(kindFlag)
	switch kind {
	case encoder.KindPrompt, encoder.KindTaskPrompt, encoder.KindConfigPrompt, encoder.KindTranscript:
	default:
		return fmt.Errorf("unsupported kind %q", kindFlag)
	}

	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	result, err := eng.Encode(ctx, string(content), kind)
	if err != nil {
		return err
	}
	return emit(result)
}

// runRecords handles the records command.
func runRecords(cmd *cobra.Command, args []string) error {
	content, err := readInput(args)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(content, &records); err != nil {
		return fmt.Errorf("parse records: %w", err)
	}

	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	result, err := eng.EncodeRecords(ctx, datasetName, records)
	if err != nil {
		return err
	}
	for _, re := range result.RecordErrors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", re)
	}
	return emit(result)
}

// emit prints the result: compressed content on stdout, stats on stderr.
func emit(result *engine.Result) error {
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"compressed":        result.Compressed,
			"original_tokens":   result.NTokens,
			"compressed_tokens": result.CTokens,
			"compression_ratio": result.CompressionRatio(),
			"fell_back":         result.FellBack,
			"metadata":          result.Metadata,
		})
	}

	fmt.Println(result.Compressed)
	if !quiet {
		fmt.Fprintf(os.Stderr, "%d → %d tokens (%.1f%% saved)\n",
			result.NTokens, result.CTokens, result.CompressionRatio())
	}
	return nil
}

// runServe starts the HTTP server and blocks until interrupted.
func runServe(cmd *cobra.Command, args []string) error {
	telCfg := telemetry.NewDefaultConfig()
	telCfg.ServiceVersion = version
	if otelEndpoint != "" {
		telCfg.Enabled = true
		telCfg.Endpoint = otelEndpoint
		telCfg.Insecure = otelInsecure
	}
	tel, err := telemetry.New(cmd.Context(), telCfg)
	if err != nil {
		return err
	}
	defer tel.Shutdown(context.Background()) //nolint:errcheck

	eng, logger, err := newEngine()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	srv, err := server.NewServer(eng, logger, &server.Config{
		Host:      serveHost,
		Port:      servePort,
		RateLimit: serveRateLimit,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", logging.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
