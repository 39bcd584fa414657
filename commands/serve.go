package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"url-risk-checker/ai"
	"url-risk-checker/config"
	"url-risk-checker/vetting"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and web UI",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// NewRouter wires the analysis and explanation endpoints.
func NewRouter(cfg *config.Config) chi.Router {
	analyzer := vetting.NewAnalyzer(vetting.AnalyzerOptions{
		TLSTimeout:     cfg.TLSTimeout,
		WhoisTimeout:   cfg.WhoisTimeout,
		AnalyzeTimeout: cfg.AnalyzeTimeout,
	})

	r := vetting.NewHandler(analyzer).Routes()
	r.Method(http.MethodPost, "/explain", ai.NewExplainHandler(analyzer, ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)))
	return r
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Printf("✅ phishcheck listening on :%s", cfg.Port)
	log.Println("📍 Endpoints:")
	log.Println("   GET  /          - Web UI")
	log.Println("   POST /analyze   - Link risk analysis")
	log.Println("   POST /explain   - Analysis with AI explanation")
	log.Println("   GET  /healthz   - Health check")
	if cfg.GeminiAPIKey == "" {
		log.Println("[AI] GEMINI_API_KEY not set, /explain disabled")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
