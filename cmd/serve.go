package cmd

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mytheresa/product-categories/app"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog as a JSON API",
	Long: `Serves the catalog over HTTP:

  GET /catalog?search=&user=&category=&sort=&order=&offset=&limit=
  GET /catalog/{id}
  GET /users
  GET /categories`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.With(zap.String("component", "server"))

		catalog, err := loadCatalog(cfg, logger)
		if err != nil {
			return err
		}

		addr := cfg.HTTPAddr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.Serve(ctx, ln, app.NewRouter(catalog, logger), log)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides HTTP_ADDR)")
}
