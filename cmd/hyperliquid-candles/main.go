package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/patrikduksin/hyperliquid-playground/internal/config"
	"github.com/patrikduksin/hyperliquid-playground/internal/hyperliquid"
	"github.com/patrikduksin/hyperliquid-playground/internal/logger"
	"github.com/patrikduksin/hyperliquid-playground/internal/report"
	"github.com/patrikduksin/hyperliquid-playground/internal/reporter"
)

const (
	_cfgFilePath = "./configs/hyperliquid-candles.yaml"
)

func main() {
	envErr := godotenv.Load()

	cfg, cfgErr := config.Load(_cfgFilePath)

	level, levelErr := logger.ParseLogLevel(cfg.LogLevel)
	zapLogger, loggerSync, err := logger.NewZapLogger(level)
	if err != nil {
		log.Fatalf("%s: can't init logger", err)
	}
	defer loggerSync()

	if envErr != nil {
		zapLogger.Warnf("can't detect .env file")
	}
	if levelErr != nil {
		zapLogger.Warnf("%s: falling back to info", levelErr)
	}
	if cfgErr != nil {
		zapLogger.Fatalf("%s: can't load config", cfgErr)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loc, err := cfg.Report.Location()
	if err != nil {
		zapLogger.Fatalf("%s: can't load report timezone", err)
	}

	infoService := hyperliquid.NewInfoService(cfg.Hyperliquid, zapLogger)
	defer infoService.Close()
	zapLogger.Debugf("using hyperliquid info endpoint %s", infoService.GetConfig().Address)

	candleStats := reporter.New(
		infoService,
		report.NewReporter(os.Stdout, loc, cfg.Report.TimeLayout),
		cfg.Query,
		zapLogger.With("coin", cfg.Query.Coin, "interval", cfg.Query.Interval),
	)

	if err := candleStats.Run(ctx, time.Now()); err != nil {
		zapLogger.Fatalf("%s", err)
	}
}
