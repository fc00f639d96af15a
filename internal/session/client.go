package session

import (
	"context"
	"strings"
)

// StartResult mirrors the daemon's start response: Result reports whether
// the topology came up, Exceptions carries per-node failure reasons.
type StartResult struct {
	Result     bool     `json:"result"`
	Exceptions []string `json:"exceptions"`
}

// Client is the session daemon surface the toolbar depends on.
//
// StopSession carries no failure payload; the daemon does not report
// partial stop failures, so only transport errors are possible there.
type Client interface {
	// StartSession provisions and boots the current topology.
	StartSession(ctx context.Context) (StartResult, error)
	// StopSession tears the running topology down.
	StopSession(ctx context.Context) error
	// RunCommand executes a shell command on a running node and returns
	// its combined output.
	RunCommand(ctx context.Context, nodeID, command string) (string, error)
}

// OperationError is a backend-reported failure carrying the daemon's
// human-readable reasons.
type OperationError struct {
	Op      string
	Reasons []string
}

func (e *OperationError) Error() string {
	if len(e.Reasons) == 0 {
		return e.Op + " failed"
	}
	return strings.Join(e.Reasons, "\n")
}
