package models

import (
	"fmt"
	"strings"
)

// Status is the review outcome of a submission
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ParseDecision accepts only the values a reviewer may set.
// "approved" is accepted as an alias used by the funding forms.
func ParseDecision(value string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "accepted", "accept", "approved":
		return StatusAccepted, nil
	case "rejected", "reject":
		return StatusRejected, nil
	}
	return "", fmt.Errorf("invalid decision %q", value)
}

// Role is the platform role of a user
type Role string

const (
	RoleStartup        Role = "startup"
	RoleResearcher     Role = "researcher"
	RoleFundingAgency  Role = "funding_agency"
	RoleIPProfessional Role = "ip_professional"
	RoleAdmin          Role = "admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleStartup, RoleResearcher, RoleFundingAgency, RoleIPProfessional, RoleAdmin:
		return true
	}
	return false
}

// SelfService reports whether users may register with this role
func (r Role) SelfService() bool {
	return r.Valid() && r != RoleAdmin
}
