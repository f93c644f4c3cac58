package notifier

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const Topic_NudgeRequest = "nudge.request"

const (
	NudgeContext_InvestmentDecision = "INVESTMENT_DECISION"
	NudgeContext_Budgeting          = "BUDGETING"
	NudgeContext_CommitmentMatured  = "COMMITMENT_MATURED"
)

// NudgeRequest asks whatever sits behind the channel to pick and deliver a
// nudge. choosing the text is not the engine's job
type NudgeRequest struct {
	UserAccountID uuid.UUID      `json:"userId"`
	Context       string         `json:"context"`
	Data          map[string]any `json:"data"`
}

type Notifier interface {
	// Emit never blocks and never fails the caller
	Emit(topic string, req NudgeRequest)
}

type Handler func(topic string, req NudgeRequest)

type envelope struct {
	topic string
	req   NudgeRequest
}

// AsyncNotifier fans events out to its handlers from a single goroutine.
// events are delivered in emission order
type AsyncNotifier struct {
	events   chan envelope
	handlers []Handler
	logger   *zap.SugaredLogger

	mu      sync.RWMutex
	closed  bool
	done    chan struct{}
	dropped atomic.Int64
}

func NewAsyncNotifier(bufferSize int, logger *zap.SugaredLogger, handlers ...Handler) *AsyncNotifier {
	if bufferSize < 1 {
		bufferSize = 1
	}
	n := &AsyncNotifier{
		events:   make(chan envelope, bufferSize),
		handlers: handlers,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go n.dispatch()
	return n
}

func (n *AsyncNotifier) Emit(topic string, req NudgeRequest) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		n.logger.Warnf("dropping %s for user %s: notifier is closed", topic, req.UserAccountID.String())
		n.dropped.Add(1)
		return
	}

	select {
	case n.events <- envelope{topic: topic, req: req}:
	default:
		n.logger.Warnf("dropping %s for user %s: buffer full", topic, req.UserAccountID.String())
		n.dropped.Add(1)
	}
}

// Dropped is the number of events discarded since start
func (n *AsyncNotifier) Dropped() int64 {
	return n.dropped.Load()
}

// Close stops accepting events and waits for the buffered ones to be
// delivered
func (n *AsyncNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		<-n.done
		return
	}
	n.closed = true
	close(n.events)
	n.mu.Unlock()

	<-n.done
}

func (n *AsyncNotifier) dispatch() {
	defer close(n.done)
	for e := range n.events {
		for _, handler := range n.handlers {
			n.deliver(handler, e)
		}
	}
}

func (n *AsyncNotifier) deliver(handler Handler, e envelope) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error(fmt.Errorf("handler panicked on %s: %v", e.topic, r))
		}
	}()
	handler(e.topic, e.req)
}

// LogHandler writes every request to the logger
func LogHandler(logger *zap.SugaredLogger) Handler {
	return func(topic string, req NudgeRequest) {
		logger.Infow(
			"nudge requested",
			"topic", topic,
			"userAccountID", req.UserAccountID.String(),
			"context", req.Context,
			"data", req.Data,
		)
	}
}
