package models

import "time"

// UserContact is the per-user anchor that invites reference.
type UserContact struct {
	ID        string
	UserID    string
	Username  string
	AvatarKey string
	CreatedAt time.Time
}

// InviteStatus is the state of a Contact edge.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "PENDING"
	InviteStatusAccepted InviteStatus = "ACCEPTED"
	InviteStatusRefused  InviteStatus = "REFUSED"
)

// Label returns a human-readable name for the status.
func (s InviteStatus) Label() string {
	switch s {
	case InviteStatusPending:
		return "Pending"
	case InviteStatusAccepted:
		return "Accepted"
	case InviteStatusRefused:
		return "Refused"
	default:
		return string(s)
	}
}

// Terminal reports whether no further transition is allowed.
func (s InviteStatus) Terminal() bool {
	return s == InviteStatusAccepted || s == InviteStatusRefused
}

// Contact is an invite edge from one UserContact to another.
type Contact struct {
	ID          string
	RequesterID string
	ReceiverID  string
	Status      InviteStatus
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}
