package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template is a read-only catalogue entry used for browsing.
type Template struct {
	ID           uuid.UUID
	TemplateType string
	Name         string
	Content      string
	Tone         *Tone
	Premium      bool
	CreatedAt    time.Time
}

// UsageStatus is the outcome of one completion call.
type UsageStatus string

const (
	UsageStatusSuccess UsageStatus = "success"
	UsageStatusFailed  UsageStatus = "failed"
)

// UsageLogEntry is an append-only record of one completion call.
type UsageLogEntry struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ProfileID       *uuid.UUID
	Action          string
	Status          UsageStatus
	TokensUsed      int
	RawPrompt       string
	ResponseSummary string
	CreatedAt       time.Time
}

// BillingRecord is an append-only record of one payment event.
type BillingRecord struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Amount                *float64
	Currency              string
	Description           string
	ExternalTransactionID string
	Status                string
	CreatedAt             time.Time
}

// CheckoutSession is the outcome of initiating a plan checkout.
type CheckoutSession struct {
	Plan        Plan
	Configured  bool
	CheckoutURL string
	Message     string
}
