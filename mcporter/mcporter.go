// Package mcporter runs documentation server calls through the mcporter
// command-line bridge.
package mcporter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/context7"
	c7json "github.com/fwojciec/context7/json"
)

// Interface compliance check.
var _ context7.Bridge = (*Client)(nil)

// Client invokes the bridge executable, one process per call. It is safe for
// concurrent use.
type Client struct {
	command        string
	configPath     string
	serverName     string
	timeout        time.Duration
	maxOutputBytes int64
}

// New creates a Client from cfg. Zero fields of cfg are replaced by defaults.
func New(cfg context7.Config) *Client {
	cfg = cfg.WithDefaults()
	return &Client{
		command:        cfg.Command,
		configPath:     cfg.MCPorterConfigPath,
		serverName:     cfg.ServerName,
		timeout:        cfg.Timeout,
		maxOutputBytes: cfg.MaxOutputBytes,
	}
}

// Args builds the argument vector of a bridge call:
//
//	call {server}.{op} --config {configPath} --args {json} --output json
func Args(server string, op context7.Operation, configPath string, args any) ([]string, error) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("encode %s arguments: %w", op, err)
	}
	return []string{
		"call",
		server + "." + string(op),
		"--config", configPath,
		"--args", string(encoded),
		"--output", "json",
	}, nil
}

// Call runs op on the configured server and decodes the response envelope.
func (c *Client) Call(ctx context.Context, op context7.Operation, args any) (*context7.BridgeResponse, error) {
	argv, err := Args(c.serverName, op, c.configPath, args)
	if err != nil {
		return nil, err
	}
	raw, err := c.Run(ctx, argv)
	if err != nil {
		var be *context7.BridgeError
		if errors.As(err, &be) {
			be.Operation = op
		}
		return nil, err
	}
	return c7json.DecodeResponse(raw)
}
