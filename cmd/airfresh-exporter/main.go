package main

import (
	"airfresh/config"
	"airfresh/device"
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if os.Getenv("AIRFRESH_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	manifestPath := os.Getenv("AIRFRESH_CONFIG")
	if manifestPath == "" {
		manifestPath = "config/exampleDeviceManifest.yaml"
	}
	appConfig := config.ReadDeviceManifest(manifestPath)

	var signals = make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	var shouldExit = make(chan bool, 1)
	go func() { <-signals; log.Info().Msg("received shutdown signal"); close(shouldExit) }()
	var allExited sync.WaitGroup
	allExited.Add(len(appConfig.Devices))

	registry := prometheus.NewRegistry()
	for _, deviceConfig := range appConfig.Devices {
		poller, err := device.NewPoller(&deviceConfig, registry)
		if err != nil {
			log.Fatal().Err(err).Str("device", deviceConfig.Name).Msg("could not set up device")
		}
		go pollDevice(&allExited, shouldExit, poller, appConfig.PollInterval)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	go startHttpServer(appConfig.Listen, mux, shouldExit)

	allExited.Wait()
	os.Exit(0)
}

func startHttpServer(listen string, mux *http.ServeMux, shouldExit chan bool) {
	server := http.Server{
		Addr:              listen,
		Handler:           mux,
		ReadTimeout:       1500 * time.Millisecond,
		ReadHeaderTimeout: 500 * time.Millisecond,
		WriteTimeout:      2 * time.Second,
	}
	log.Info().Str("listen", listen).Msg("serving metrics")
	go func() {
		<-shouldExit
		if err := server.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("could not shut down http server")
		}
	}()
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("http server stopped")
	}
	close(shouldExit)
}

func pollDevice(allExited *sync.WaitGroup, shouldExit <-chan bool, poller device.Poller, interval time.Duration) {
	labels := poller.CommonMetricLabels()
	log.Info().Str("device", labels["dev_full_name"]).Msg("starting poll ticker")
	defer allExited.Done()
	ticker := time.NewTicker(interval)
	for {
		select {
		case <-shouldExit:
			ticker.Stop()
			return
		case <-ticker.C:
			if err := poller.PollDeviceAndUpdateMetrics(); err != nil {
				log.Warn().Err(err).Str("device", labels["dev_full_name"]).Msg("could not query device")
				poller.ResetMetricsToRogueValues()
			}
		}
	}
}
