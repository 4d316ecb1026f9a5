// Package engine ties the command stream, the matching core and the event
// stream together into a single-writer processing loop.
package engine

import (
	"context"
	"sync"
	"time"

	matchpublisherv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/match-publisher/v1"
	orderreaderv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/order-reader/v1"
	orderbookv1 "github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/domain/orderbook/v1"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/internal/usecase/orderbook"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/config"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/errors"
	"github.com/undecidedzogvisvitalispotent8stars360/orderbook/pkg/logger"
)

// Engine is the main engine for processing commands against the order book.
// The book itself is single-writer; only the command processor goroutine
// touches it, so every command observes the previous one completed.
type Engine struct {
	book           *orderbook.OrderBook
	orderReader    orderreaderv1.OrderReader
	matchPublisher matchpublisherv1.MatchPublisher
	logger         logger.Interface
	config         *config.Config

	mu            sync.RWMutex
	commandOffset int64
	totalTrades   int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	verifyInterval time.Duration
	depthLimit     int

	// verifyRequests hands verification over to the processor goroutine,
	// keeping the book single-writer.
	verifyRequests chan struct{}
}

// NewEngine creates a new instance of Engine with the provided dependencies.
func NewEngine(
	book *orderbook.OrderBook,
	orderReader orderreaderv1.OrderReader,
	matchPublisher matchpublisherv1.MatchPublisher,
	log logger.Interface,
	cfg *config.Config,
) *Engine {
	return NewEngineWithOptions(book, orderReader, matchPublisher, log, cfg, DefaultEngineOptions())
}

// NewEngineWithOptions creates a new engine with custom options.
func NewEngineWithOptions(
	book *orderbook.OrderBook,
	orderReader orderreaderv1.OrderReader,
	matchPublisher matchpublisherv1.MatchPublisher,
	log logger.Interface,
	cfg *config.Config,
	options *Options,
) *Engine {
	return &Engine{
		book:           book,
		orderReader:    orderReader,
		matchPublisher: matchPublisher,
		logger:         log,
		config:         cfg,

		commandOffset:  -1,
		verifyInterval: options.VerifyInterval,
		depthLimit:     options.DepthLimit,
		verifyRequests: make(chan struct{}, 1),
	}
}

// Start launches the processing routines.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	e.wg.Add(1)
	go e.runCommandProcessor()

	if e.verifyInterval > 0 {
		e.wg.Add(1)
		go e.runVerifyScheduler()
	}

	e.logger.Info("engine started", logger.Field{
		Key:   "symbol",
		Value: e.config.Symbol,
	})
	return nil
}

// Stop gracefully shuts down the engine.
func (e *Engine) Stop(ctx context.Context) error {
	if e.cancel != nil {
		e.cancel()
	}

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		e.logger.Info("engine stopped")
		return nil
	case <-ctx.Done():
		e.logger.Warn("engine stop timeout exceeded")
		return ctx.Err()
	}
}

// runCommandProcessor reads, processes and publishes commands one at a time.
func (e *Engine) runCommandProcessor() {
	defer e.wg.Done()

	e.logger.Info("starting command processor", logger.Field{
		Key:   "symbol",
		Value: e.config.Symbol,
	})

	for {
		select {
		case <-e.ctx.Done():
			e.logger.Info("command processor shutting down")
			if err := e.orderReader.Close(); err != nil {
				e.logger.Error(err, logger.Field{Key: "action", Value: "close_order_reader"})
			}
			return
		case <-e.verifyRequests:
			e.verifyBook()
		default:
			msg, payload, err := e.orderReader.ReadCommand(e.ctx)
			if err != nil {
				if e.ctx.Err() != nil {
					continue
				}
				e.logger.Error(err, logger.Field{Key: "action", Value: "read_command"})
				time.Sleep(100 * time.Millisecond)
				continue
			}

			if err := e.processCommand(payload); err != nil {
				e.logger.Error(err, logger.Field{Key: "action", Value: "process_command"})
				continue
			}

			if err := e.orderReader.CommitMessages(e.ctx, msg); err != nil {
				e.logger.Error(err, logger.Field{Key: "action", Value: "commit_command"})
			}

			e.setCommandOffset(msg.Offset)
		}
	}
}

// runVerifyScheduler requests a book verification on a fixed cadence.
func (e *Engine) runVerifyScheduler() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.verifyInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.ctx.Done():
			return
		case <-ticker.C:
			select {
			case e.verifyRequests <- struct{}{}:
			default: // a check is already pending
			}
		}
	}
}

// processCommand dispatches one payload to the book and publishes the
// resulting events.
func (e *Engine) processCommand(payload *orderreaderv1.OrderCommandPayload) error {
	var resp *orderbookv1.CommandResponse

	switch payload.Kind {
	case orderreaderv1.KindPlace:
		resp = e.book.Place(payload.ToPlace())
	case orderreaderv1.KindCancel:
		resp = e.book.Cancel(payload.ToCancel())
	case orderreaderv1.KindReduce:
		resp = e.book.Reduce(payload.ToReduce())
	case orderreaderv1.KindMove:
		resp = e.book.Move(payload.ToMove())
	default:
		return errors.NewTracer("unknown command kind: " + string(payload.Kind))
	}

	if resp.ResultCode != orderbookv1.ResultSuccess {
		e.logger.Warn("command rejected",
			logger.Field{Key: "kind", Value: payload.Kind},
			logger.Field{Key: "orderId", Value: payload.OrderID},
			logger.Field{Key: "uid", Value: payload.UID},
			logger.Field{Key: "result", Value: resp.ResultCode.String()},
		)
	}

	if len(resp.Trades) > 0 {
		e.recordTrades(len(resp.Trades))
	}

	events := matchpublisherv1.FromResponse(e.config.Symbol, resp)
	if len(events) == 0 {
		return nil
	}
	return e.matchPublisher.PublishMatchEvents(e.ctx, events)
}

// verifyBook checks the book's internal consistency and logs a depth summary.
// A book that fails verification must not keep trading: the loop is shut down
// and no further commands are processed or published.
func (e *Engine) verifyBook() {
	if err := e.book.VerifyInternalState(); err != nil {
		e.logger.Error(err,
			logger.Field{Key: "action", Value: "verify_book"},
			logger.Field{Key: "offset", Value: e.getCommandOffset()},
		)
		e.cancel()
		return
	}

	depth := e.book.L2Snapshot(e.depthLimit)
	e.logger.Info("book verified",
		logger.Field{Key: "symbol", Value: e.config.Symbol},
		logger.Field{Key: "orders", Value: e.book.OrderCount()},
		logger.Field{Key: "askLevels", Value: depth.AskSize()},
		logger.Field{Key: "bidLevels", Value: depth.BidSize()},
		logger.Field{Key: "totalTrades", Value: e.TotalTrades()},
		logger.Field{Key: "offset", Value: e.getCommandOffset()},
	)
}

func (e *Engine) recordTrades(n int) {
	e.mu.Lock()
	e.totalTrades += int64(n)
	e.mu.Unlock()
}

// TotalTrades returns the number of trades executed since start.
func (e *Engine) TotalTrades() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.totalTrades
}

func (e *Engine) getCommandOffset() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.commandOffset
}

func (e *Engine) setCommandOffset(offset int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.commandOffset = offset
}
