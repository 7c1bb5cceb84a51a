package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/ssidwatch/ssidwatch/internal/config"
	"codeberg.org/ssidwatch/ssidwatch/internal/history"
	"codeberg.org/ssidwatch/ssidwatch/internal/logger"
	"codeberg.org/ssidwatch/ssidwatch/internal/pid"
	"codeberg.org/ssidwatch/ssidwatch/internal/queue"
	"codeberg.org/ssidwatch/ssidwatch/internal/rt"
	"codeberg.org/ssidwatch/ssidwatch/internal/sampler"
	"codeberg.org/ssidwatch/ssidwatch/internal/scanner"
	"codeberg.org/ssidwatch/ssidwatch/internal/store"
)

// Exit statuses. Configuration problems are reported before any real-time
// setup; memory lock and affinity failures void the timing contract and
// are fatal with their own codes.
const (
	exitOK       = 0
	exitError    = 1
	exitMemLock  = 2
	exitAffinity = 3
	exitUsage    = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ssidwatch: %v\n", err)
		fmt.Fprintf(os.Stderr, "usage: ssidwatch [flags] <period-seconds>\n")
		return exitUsage
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	if !cfg.Debug && !cfg.Verbose {
		if err := logger.SetLogLevelFromName(cfg.LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "ssidwatch: %v\n", err)
			return exitUsage
		}
	}

	if err := pid.Write(); err != nil {
		logger.Error().Err(err).Msg("Failed to write PID file")
		return exitError
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Warn().Err(err).Msg("Failed to remove PID file")
		}
	}()

	if err := rt.LockMemory(); err != nil {
		logger.Error().Err(err).Msg("Cannot lock memory")
		return exitMemLock
	}
	rt.PrefaultStack()

	if err := rt.PinCPU(cfg.CPU); err != nil {
		logger.Error().Err(err).Msg("Cannot set CPU affinity")
		return exitAffinity
	}

	logger.Info().
		Uint("period_s", cfg.Period).
		Int("cpu", cfg.CPU).
		Int("rt_priority", cfg.RTPriority).
		Int("queue_capacity", cfg.QueueCapacity).
		Msg("Real-time environment configured")

	obsLog, err := store.NewObservationLog(store.Config{
		DBPath:  cfg.Database,
		Enabled: cfg.Telemetry,
	})
	if err != nil {
		// The observation log is supplementary; run without it.
		logger.Warn().Err(err).Msg("Observation log unavailable, continuing without it")
		obsLog, _ = store.NewObservationLog(store.Config{Enabled: false})
	}

	q := queue.New(cfg.QueueCapacity)
	hist := history.New()
	clock := sampler.NewClock()
	report := store.NewFileReport(cfg.Report)
	scn := scanner.NewCommand(cfg.ScanCommand)

	producer := sampler.NewProducer(q, scn, clock, time.Duration(cfg.Period)*time.Second, cfg.RTPriority)
	consumer := sampler.NewConsumer(q, hist, report, obsLog, clock, cfg.RTPriority)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	producerDone := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(producerDone)
		producer.Run(ctx)
	}()
	go func() {
		defer close(consumerDone)
		consumer.Run(ctx)
	}()

	// Closing the queue wakes any suspended task; the consumer drains
	// what is left and writes the final report before exiting.
	<-ctx.Done()
	q.Close()
	<-producerDone
	<-consumerDone

	if err := obsLog.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close observation log")
	}

	logger.Info().Msg("Exiting...")

	return exitOK
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
