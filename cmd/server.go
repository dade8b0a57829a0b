package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/chunlian/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the generation gateway",
	Long: `Starts the HTTP gateway that relays couplet and fortune requests to the
configured model. With serve_static on (or NODE_ENV=production) it also serves
the built web app from static_dir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:        cfg.Port,
			ServeStatic: cfg.ServeStatic,
			StaticDir:   cfg.StaticDir,
		}, gen)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logrus.Info("shutting down gateway")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		logrus.Infof("chunlian %s", Version)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 3000, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
