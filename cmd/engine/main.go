package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/app/engine"
	symbolv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/symbol/v1"
	matchpublisher "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/usecase/match-publisher"
	orderreader "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/usecase/order-reader"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/usecase/orderbook"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/config"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/logger"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = config.MustLoad(&config.Config{})

	l, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	log = l
}

func main() {
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if cfg.SymbolSpecPath != "" {
		spec, err := symbolv1.LoadSpec(cfg.SymbolSpecPath)
		if err != nil {
			log.Error(err, logger.Field{Key: "action", Value: "load_symbol_spec"})
			return
		}
		if spec.Symbol != cfg.Symbol {
			log.Warn("symbol spec does not match configured symbol",
				logger.Field{Key: "configured", Value: cfg.Symbol},
				logger.Field{Key: "spec", Value: spec.Symbol},
			)
			return
		}
		log.Info("symbol spec loaded",
			logger.Field{Key: "symbol", Value: spec.Symbol},
			logger.Field{Key: "type", Value: string(spec.Type)},
		)
	}

	book := orderbook.NewOrderBook()
	oReader := orderreader.NewReader(cfg.OrderReader, log)
	mPublisher := matchpublisher.NewPublisher(cfg.MatchPublisher, log)

	options := app.DefaultEngineOptions()
	options.VerifyInterval = time.Duration(cfg.Engine.VerifyIntervalSeconds) * time.Second
	options.DepthLimit = cfg.Engine.DepthLimit

	engine := app.NewEngineWithOptions(book, oReader, mPublisher, log, cfg, options)

	if err := engine.Start(ctx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "start_engine"})
		return
	}

	log.Info("matching engine started", logger.Field{
		Key:   "symbol",
		Value: cfg.Symbol,
	})

	sig := <-sigChan
	log.Info("received shutdown signal", logger.Field{
		Key:   "signal",
		Value: sig.String(),
	})

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := engine.Stop(shutdownCtx); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "stop_engine"})
	}

	if err := mPublisher.Close(); err != nil {
		log.Error(err, logger.Field{Key: "action", Value: "close_match_publisher"})
	}

	log.Info("matching engine shutdown complete")
}
