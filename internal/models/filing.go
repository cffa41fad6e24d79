package models

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// FilingKind is the intellectual property category of a filing
type FilingKind string

const (
	KindPatent      FilingKind = "patent"
	KindTrademark   FilingKind = "trademark"
	KindCopyright   FilingKind = "copyright"
	KindTradeSecret FilingKind = "trade_secret"
)

// ParseFilingKind accepts the stored value or its URL slug ("trade-secret")
func ParseFilingKind(value string) (FilingKind, error) {
	kind := FilingKind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_"))
	switch kind {
	case KindPatent, KindTrademark, KindCopyright, KindTradeSecret:
		return kind, nil
	}
	return "", fmt.Errorf("unknown filing kind %q", value)
}

// Slug is the URL form of the kind
func (k FilingKind) Slug() string {
	return strings.ReplaceAll(string(k), "_", "-")
}

// Ledger states of a filing decision
const (
	LedgerNone      = "none"
	LedgerPending   = "pending"
	LedgerConfirmed = "confirmed"
	LedgerFailed    = "failed"
	LedgerRejected  = "rejected"
)

// Filing is a patent, trademark, copyright or trade secret record
type Filing struct {
	Base         `bson:",inline"`
	Review       `bson:",inline"`
	Kind         FilingKind        `gorm:"size:32;index;not null" bson:"kind" json:"kind"`
	OwnerID      string            `gorm:"size:36;index;not null" bson:"owner_id" json:"ownerId"`
	Title        string            `gorm:"size:512;not null" bson:"title" json:"title"`
	Description  string            `gorm:"type:text" bson:"description" json:"description"`
	Attributes   datatypes.JSONMap `bson:"attributes" json:"attributes"`
	UploadIDs    StringList        `bson:"upload_ids" json:"uploadIds"`
	LedgerStatus string            `gorm:"size:16;not null;default:none" bson:"ledger_status" json:"ledgerStatus"`
	TxHash       string            `gorm:"size:128" bson:"tx_hash,omitempty" json:"txHash,omitempty"`
	LedgerError  string            `gorm:"size:1000" bson:"ledger_error,omitempty" json:"ledgerError,omitempty"`
}

// TableName overrides the table name for Filing
func (Filing) TableName() string {
	return "filings"
}

// Text is the content compared by similarity analysis
func (f *Filing) Text() string {
	var b strings.Builder
	b.WriteString(f.Title)
	b.WriteString("\n")
	b.WriteString(f.Description)
	for _, key := range sortedKeys(f.Attributes) {
		if s, ok := f.Attributes[key].(string); ok && s != "" {
			b.WriteString("\n")
			b.WriteString(s)
		}
	}
	return b.String()
}
