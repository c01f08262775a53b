package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deppfellow/flight-itinerary/internal/config"
	"github.com/deppfellow/flight-itinerary/internal/handler"
	"github.com/deppfellow/flight-itinerary/internal/logger"
	"github.com/deppfellow/flight-itinerary/internal/router"
	"github.com/deppfellow/flight-itinerary/internal/server"
	"github.com/deppfellow/flight-itinerary/internal/service"
)

const defaultConfigPath = "config/config.yaml"

var rootCmd = &cobra.Command{
	Use:   "flight-itinerary",
	Short: "Flight itinerary service",
	Long: "Serves POST /compute, which finds the overall starting and ending airport " +
		"of a trip from an unordered list of flight paths.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

func init() {
	rootCmd.Flags().StringP("config", "c", defaultConfigPath,
		"Path to the YAML config file (FLIGHT_ITINERARY_* env vars override it)")
}

func runServer(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	services, err := service.NewServices(srv)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			log.Error().Err(err).Msg("failed to start server")
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracePeriod())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	return nil
}
