package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zainab-06-p/linkscout/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON analysis API server",
	Long: `Serve runs the HTTP API used by the browser extension:
- POST /api/v1/analyze-chunks  full paragraph-level analysis
- POST /quick-test             lightweight three-factor risk check
- GET  /health                 health probe

Example:
  linkscout serve
  linkscout serve --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :5000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	a, err := buildApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(a.analyzer, a.quick, cfg.Server, a.logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}

	a.logger.Info("server stopped", zap.String("addr", cfg.Server.Addr))
	return nil
}
