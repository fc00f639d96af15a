package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"netlab-designer/internal/logger"
)

// frame is the wire envelope for daemon requests and responses.
type frame struct {
	Type   string          `json:"type"`
	ID     string          `json:"id"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

const (
	frameTypeRequest  = "request"
	frameTypeResponse = "response"
)

// WSClient implements Client over a websocket connection to the session
// daemon. Calls are serialized: one request/response round trip at a time.
type WSClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
	log  logger.Logger
}

// Dial connects to the daemon's session endpoint.
func Dial(ctx context.Context, url string, log logger.Logger) (*WSClient, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial session daemon: %w", err)
	}
	log.Info("session", "connected to daemon", map[string]interface{}{"url": url})
	return &WSClient{conn: conn, log: log}, nil
}

func (c *WSClient) StartSession(ctx context.Context) (StartResult, error) {
	var result StartResult
	if err := c.call(ctx, "start_session", nil, &result); err != nil {
		return StartResult{}, err
	}
	return result, nil
}

func (c *WSClient) StopSession(ctx context.Context) error {
	return c.call(ctx, "stop_session", nil, nil)
}

func (c *WSClient) RunCommand(ctx context.Context, nodeID, command string) (string, error) {
	params := map[string]string{"node": nodeID, "command": command}
	var result struct {
		Output string `json:"output"`
	}
	if err := c.call(ctx, "run_command", params, &result); err != nil {
		return "", err
	}
	return result.Output, nil
}

// call performs one request/response round trip. Responses are matched by
// request id; the daemon answers in order, so mismatched ids are a protocol
// violation.
func (c *WSClient) call(ctx context.Context, method string, params, result interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	req := frame{
		Type:   frameTypeRequest,
		ID:     uuid.NewString(),
		Method: method,
	}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("%s: marshal params: %w", method, err)
		}
		req.Params = raw
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%s: marshal frame: %w", method, err)
	}
	if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("%s: write: %w", method, err)
	}

	_, data, err = c.conn.Read(ctx)
	if err != nil {
		return fmt.Errorf("%s: read: %w", method, err)
	}
	var resp frame
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("%s: decode frame: %w", method, err)
	}
	if resp.Type != frameTypeResponse || resp.ID != req.ID {
		return fmt.Errorf("%s: unexpected frame %s/%s", method, resp.Type, resp.ID)
	}
	if resp.Error != "" {
		return fmt.Errorf("%s: daemon: %s", method, resp.Error)
	}
	if result != nil && len(resp.Result) > 0 {
		if err := json.Unmarshal(resp.Result, result); err != nil {
			return fmt.Errorf("%s: decode result: %w", method, err)
		}
	}
	return nil
}

// Close gracefully closes the connection.
func (c *WSClient) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "bye")
}
