package baresip

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/internal/utils"
	"github.com/goccy/go-json"
)

const writeTimeout = 2 * time.Second

var (
	ErrCtrlClosed    = errors.New("baresip ctrl connection closed")
	ErrCommandFailed = errors.New("baresip command failed")
)

// ctrlConn multiplexes commands and events over one ctrl_tcp connection.
// Responses are matched to commands by token.
type ctrlConn struct {
	conn   net.Conn
	tokens *utils.UUIDGenerator

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan responseMsg

	events   chan eventMsg
	done     chan struct{}
	failOnce sync.Once
	err      error

	logger *logger.Logger
}

func newCtrlConn(conn net.Conn, log *logger.Logger) *ctrlConn {
	c := &ctrlConn{
		conn:    conn,
		tokens:  utils.NewUUIDGenerator(),
		pending: make(map[string]chan responseMsg),
		events:  make(chan eventMsg, 32),
		done:    make(chan struct{}),
		logger:  log,
	}
	go c.readLoop()
	return c
}

// Command sends command and waits for its response.
func (c *ctrlConn) Command(ctx context.Context, command, params string) (responseMsg, error) {
	token := c.tokens.Generate()
	ch := make(chan responseMsg, 1)

	c.mu.Lock()
	c.pending[token] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, token)
		c.mu.Unlock()
	}()

	data, err := json.Marshal(commandMsg{Command: command, Params: params, Token: token})
	if err != nil {
		return responseMsg{}, fmt.Errorf("encoding %s command: %w", command, err)
	}

	if err = c.write(data); err != nil {
		return responseMsg{}, fmt.Errorf("writing %s command: %w", command, err)
	}

	select {
	case <-ctx.Done():
		return responseMsg{}, ctx.Err()
	case <-c.done:
		return responseMsg{}, c.closeErr()
	case resp := <-ch:
		if !resp.Ok {
			return resp, fmt.Errorf("%w: %s: %s", ErrCommandFailed, command, resp.Data)
		}
		return resp, nil
	}
}

func (c *ctrlConn) write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	select {
	case <-c.done:
		return c.closeErr()
	default:
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return writeNetstring(c.conn, data)
}

func (c *ctrlConn) readLoop() {
	r := newNetstringReader(c.conn)
	for {
		frame, err := r.next()
		if err != nil {
			c.fail(err)
			return
		}

		var kind frameKind
		if err = json.Unmarshal(frame, &kind); err != nil {
			c.logger.Warn().Err(err).Bytes("frame", frame).Msg("undecodable ctrl frame")
			continue
		}

		switch {
		case kind.Event:
			var ev eventMsg
			if err = json.Unmarshal(frame, &ev); err != nil {
				c.logger.Warn().Err(err).Msg("undecodable event")
				continue
			}
			c.events <- ev

		case kind.Response:
			var resp responseMsg
			if err = json.Unmarshal(frame, &resp); err != nil {
				c.logger.Warn().Err(err).Msg("undecodable response")
				continue
			}
			c.mu.Lock()
			ch, ok := c.pending[resp.Token]
			c.mu.Unlock()
			if ok {
				ch <- resp
			}
		}
	}
}

func (c *ctrlConn) fail(err error) {
	c.failOnce.Do(func() {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		close(c.done)
		close(c.events)
	})
}

func (c *ctrlConn) closeErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		return ErrCtrlClosed
	}
	return fmt.Errorf("%w: %w", ErrCtrlClosed, c.err)
}

// Events is closed when the connection ends.
func (c *ctrlConn) Events() <-chan eventMsg {
	return c.events
}

func (c *ctrlConn) Close() error {
	return c.conn.Close()
}
