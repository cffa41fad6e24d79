// Package ledger records IP filing decisions on a Neo N3 smart contract.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/tidwall/gjson"
)

var (
	// ErrNotConfigured is returned when no RPC endpoint or contract is set
	ErrNotConfigured = errors.New("ledger is not configured")
	// ErrFaulted is returned when the contract call does not end in HALT
	ErrFaulted = errors.New("ledger transaction faulted")
	// ErrRejected is returned when the node refuses the transaction
	ErrRejected = errors.New("ledger transaction rejected")
)

// DefaultTxWaitTimeout is the default timeout for waiting for transaction execution.
const DefaultTxWaitTimeout = 2 * time.Minute

// DefaultPollInterval is the default interval for polling transaction status.
const DefaultPollInterval = 2 * time.Second

// Config holds client configuration
type Config struct {
	RPCURL       string
	Contract     string
	Timeout      time.Duration
	PollInterval time.Duration
	WaitTimeout  time.Duration
}

// Client talks JSON-RPC 2.0 to a Neo N3 node
type Client struct {
	rpcURL       string
	contract     util.Uint160
	httpClient   *http.Client
	pollInterval time.Duration
	waitTimeout  time.Duration
}

// NewClient creates a client for the configured contract
func NewClient(cfg Config) (*Client, error) {
	if cfg.RPCURL == "" || cfg.Contract == "" {
		return nil, ErrNotConfigured
	}

	contract, err := util.Uint160DecodeStringLE(strings.TrimPrefix(cfg.Contract, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid contract hash %q: %w", cfg.Contract, err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	wait := cfg.WaitTimeout
	if wait <= 0 {
		wait = DefaultTxWaitTimeout
	}

	return &Client{
		rpcURL:       cfg.RPCURL,
		contract:     contract,
		httpClient:   &http.Client{Timeout: timeout},
		pollInterval: poll,
		waitTimeout:  wait,
	}, nil
}

// RPCURL is the node endpoint
func (c *Client) RPCURL() string {
	return c.rpcURL
}

// ContractHash is the contract script hash in RPC form
func (c *Client) ContractHash() string {
	return "0x" + c.contract.StringLE()
}

// RPCError is the error member of a JSON-RPC response
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Unwrap classifies node refusals as ErrRejected
func (e *RPCError) Unwrap() error {
	msg := strings.ToLower(e.Message + " " + e.Data)
	for _, word := range []string{"reject", "denied", "cancel"} {
		if strings.Contains(msg, word) {
			return ErrRejected
		}
	}
	return nil
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

// Call makes an RPC call to the node
func (c *Client) Call(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var rpcResp struct {
		Result json.RawMessage `json:"result"`
		Error  *RPCError       `json:"error"`
	}
	if err := json.Unmarshal(respBody, &rpcResp); err != nil {
		return nil, fmt.Errorf("unmarshal response (http %d): %w", resp.StatusCode, err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}

	return rpcResp.Result, nil
}

// Param is a typed contract argument
type Param struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// InvokeResult is the outcome of invokefunction
type InvokeResult struct {
	State       string
	Exception   string
	GasConsumed string
	Tx          string
}

// InvokeFunction invokes a method of the configured contract
func (c *Client) InvokeFunction(ctx context.Context, method string, params []Param) (*InvokeResult, error) {
	raw, err := c.Call(ctx, "invokefunction", []interface{}{c.ContractHash(), method, params})
	if err != nil {
		return nil, err
	}

	return &InvokeResult{
		State:       gjson.GetBytes(raw, "state").String(),
		Exception:   gjson.GetBytes(raw, "exception").String(),
		GasConsumed: gjson.GetBytes(raw, "gasconsumed").String(),
		Tx:          gjson.GetBytes(raw, "tx").String(),
	}, nil
}

// ApplicationLog is the first execution of a transaction's application log
type ApplicationLog struct {
	TxHash    string
	VMState   string
	Exception string
}

// GetApplicationLog returns the application log for a transaction
func (c *Client) GetApplicationLog(ctx context.Context, txHash string) (*ApplicationLog, error) {
	raw, err := c.Call(ctx, "getapplicationlog", []interface{}{txHash})
	if err != nil {
		return nil, err
	}

	return &ApplicationLog{
		TxHash:    gjson.GetBytes(raw, "txid").String(),
		VMState:   gjson.GetBytes(raw, "executions.0.vmstate").String(),
		Exception: gjson.GetBytes(raw, "executions.0.exception").String(),
	}, nil
}

// WaitForApplicationLog polls for a transaction application log until it is available or ctx is done.
// A missing transaction is treated as transient.
func (c *Client) WaitForApplicationLog(ctx context.Context, txHash string, pollInterval time.Duration) (*ApplicationLog, error) {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			log, err := c.GetApplicationLog(ctx, txHash)
			if err != nil {
				if isNotFoundError(err) {
					continue
				}
				return nil, err
			}
			return log, nil
		}
	}
}

func isNotFoundError(err error) bool {
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}
	msg := strings.ToLower(rpcErr.Message)
	return rpcErr.Code == -100 || strings.Contains(msg, "unknown transaction") || strings.Contains(msg, "not found")
}
