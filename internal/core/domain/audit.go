package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// AuditType tags which client archetype produced an audit payload.
type AuditType string

const (
	AuditTypeDealer     AuditType = "Dealer"
	AuditTypeHOA        AuditType = "HOA"
	AuditTypeIndustrial AuditType = "Industrial"
)

var ErrAuditNotFound = errors.New("audit not found")
var ErrInvalidAudit = errors.New("invalid audit")

// Valid reports whether t is one of the three known archetypes.
func (t AuditType) Valid() bool {
	switch t {
	case AuditTypeDealer, AuditTypeHOA, AuditTypeIndustrial:
		return true
	}
	return false
}

// Audit is a saved sales-opportunity calculation. The payload shape depends
// on Type and is validated only at the API boundary; storage treats it as an
// opaque JSON object. Audits are immutable after creation and always scoped
// to their owning user.
type Audit struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Type      AuditType       `json:"type"`
	Data      json.RawMessage `json:"data"`
	Summary   string          `json:"summary"`
	CreatedAt time.Time       `json:"createdAt"`
}
