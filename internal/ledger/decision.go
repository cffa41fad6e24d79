package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/localnerve/innohub/internal/models"
)

// Decision is a review outcome to be recorded on chain
type Decision struct {
	FilingID string
	Kind     models.FilingKind
	Status   models.Status
	Digest   string
}

// Receipt identifies the confirmed transaction
type Receipt struct {
	TxHash  string `json:"txHash"`
	VMState string `json:"vmState"`
}

// Recorder records filing decisions
type Recorder interface {
	RecordDecision(ctx context.Context, d Decision) (*Receipt, error)
}

// MethodFor returns the contract method for a decision
func MethodFor(status models.Status) (string, error) {
	switch status {
	case models.StatusAccepted:
		return "acceptFiling", nil
	case models.StatusRejected:
		return "rejectFiling", nil
	}
	return "", fmt.Errorf("no ledger method for status %q", status)
}

// RecordDecision invokes the contract and waits for the transaction to execute.
// The receipt is returned with the transaction hash even when waiting fails.
func (c *Client) RecordDecision(ctx context.Context, d Decision) (*Receipt, error) {
	method, err := MethodFor(d.Status)
	if err != nil {
		return nil, err
	}

	params := []Param{
		{Type: "String", Value: d.FilingID},
		{Type: "String", Value: string(d.Kind)},
		{Type: "Hash256", Value: d.Digest},
	}

	res, err := c.InvokeFunction(ctx, method, params)
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", method, err)
	}
	if res.State != "HALT" {
		return nil, fmt.Errorf("%s %w: %s", method, ErrFaulted, res.Exception)
	}
	if res.Tx == "" {
		return nil, fmt.Errorf("%s: node returned no transaction", method)
	}

	receipt := &Receipt{TxHash: res.Tx, VMState: res.State}

	wctx, cancel := context.WithTimeout(ctx, c.waitTimeout)
	defer cancel()

	appLog, err := c.WaitForApplicationLog(wctx, res.Tx, c.pollInterval)
	if err != nil {
		return receipt, fmt.Errorf("wait for %s execution: %w", method, err)
	}
	if appLog.TxHash != "" {
		receipt.TxHash = appLog.TxHash
	}
	receipt.VMState = appLog.VMState
	if appLog.VMState != "HALT" {
		return receipt, fmt.Errorf("%s %w: %s", method, ErrFaulted, appLog.Exception)
	}

	return receipt, nil
}

// Digest fingerprints the reviewed content of a filing
func Digest(f *models.Filing) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		f.ID, string(f.Kind), f.OwnerID, f.Title, f.Description,
	}, "\x1f")))
	return hex.EncodeToString(sum[:])
}
