package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

var errListenerDown = errors.New("LISTEN connection not established")

// listenOp asks the receive loop to join or leave a NOTIFY channel.
// pgx connections are not safe for concurrent use, so LISTEN/UNLISTEN
// must run on the same goroutine that calls WaitForNotification.
type listenOp struct {
	channel string
	join    bool
	done    chan error
}

// NotifyListener holds the process-wide dedicated LISTEN connection
// and fans incoming NOTIFY payloads out to the local ConnectionManager.
// One listener per pod; the receive loop is the only goroutine that
// ever touches the pgx connection.
type NotifyListener struct {
	dsn     string
	manager *ConnectionManager

	mu   sync.Mutex
	conn *pgx.Conn

	ops     chan listenOp
	started atomic.Bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener creates a listener. dsn must point at the same
// database the publisher writes to, without any search_path override.
func NewNotifyListener(dsn string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		dsn:     dsn,
		manager: manager,
		ops:     make(chan listenOp, 16),
	}
}

// Start dials the dedicated connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}
	l.setConn(conn)
	l.started.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe issues LISTEN for channel. Blocks until the receive loop
// has executed the command, so notifications published after Subscribe
// returns are guaranteed to be delivered.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	if !l.started.Load() {
		return errListenerDown
	}
	if err := l.request(ctx, listenOp{channel: channel, join: true}); err != nil {
		return fmt.Errorf("LISTEN %s: %w", channel, err)
	}
	slog.Debug("Subscribed to NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe issues UNLISTEN for channel. A no-op before Start, or
// for a channel that was never joined.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	if !l.started.Load() {
		return nil
	}
	if err := l.request(ctx, listenOp{channel: channel, join: false}); err != nil {
		return fmt.Errorf("UNLISTEN %s: %w", channel, err)
	}
	return nil
}

// Stop winds down the receive loop, then closes the connection. The
// ordering matters: closing a pgx conn while WaitForNotification is
// blocked on it races.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.started.Store(false)

	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

func (l *NotifyListener) request(ctx context.Context, op listenOp) error {
	op.done = make(chan error, 1)
	select {
	case l.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-op.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *NotifyListener) current() *pgx.Conn {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn
}

func (l *NotifyListener) setConn(conn *pgx.Conn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conn = conn
}

// receiveLoop owns the LISTEN connection: it applies pending channel
// ops, waits for notifications in short slices so ops are picked up
// promptly, and redials on connection loss. active is the set of
// joined channels, re-established after every reconnect.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	active := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainOps(ctx, active)

		conn := l.current()
		if conn == nil {
			l.redial(ctx, active)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue // wait slice elapsed, check for pending ops
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.redial(ctx, active)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

func (l *NotifyListener) drainOps(ctx context.Context, active map[string]bool) {
	for {
		select {
		case op := <-l.ops:
			op.done <- l.applyOp(ctx, op, active)
		default:
			return
		}
	}
}

func (l *NotifyListener) applyOp(ctx context.Context, op listenOp, active map[string]bool) error {
	if op.join == active[op.channel] {
		return nil // already in the requested state
	}
	conn := l.current()
	if conn == nil {
		return errListenerDown
	}

	verb := "UNLISTEN "
	if op.join {
		verb = "LISTEN "
	}
	if _, err := conn.Exec(ctx, verb+pgx.Identifier{op.channel}.Sanitize()); err != nil {
		return err
	}

	if op.join {
		active[op.channel] = true
	} else {
		delete(active, op.channel)
	}
	return nil
}

// redial replaces a dead connection, backing off exponentially, and
// re-joins every active channel before handing the connection back to
// the receive loop.
func (l *NotifyListener) redial(ctx context.Context, active map[string]bool) {
	if conn := l.current(); conn != nil {
		_ = conn.Close(ctx)
		l.setConn(nil)
	}

	wait := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		conn, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "retry_in", wait)
			wait = min(wait*2, 30*time.Second)
			continue
		}

		for ch := range active {
			if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
				slog.Error("Re-LISTEN after reconnect failed", "channel", ch, "error", err)
			}
		}

		l.setConn(conn)
		slog.Info("NotifyListener reconnected")
		return
	}
}
