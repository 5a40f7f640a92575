package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Member entity
// ---------------------------------------------------------------------------

// Member is a cooperative member. Membership administration lives in a
// separate subsystem; the engine reads members to attribute loans and dues
// and to split savings between liabilities and equity.
type Member struct {
	id         uuid.UUID
	memberCode string
	name       string
	active     bool
	joinedAt   time.Time
}

// NewMember creates an active member record.
func NewMember(memberCode, name string, joinedAt time.Time) (Member, error) {
	if memberCode == "" {
		return Member{}, errors.New("member code is required")
	}
	if name == "" {
		return Member{}, errors.New("member name is required")
	}

	return Member{
		id:         uuid.New(),
		memberCode: memberCode,
		name:       name,
		active:     true,
		joinedAt:   joinedAt,
	}, nil
}

// ReconstructMember rebuilds a Member from persistence.
func ReconstructMember(id uuid.UUID, memberCode, name string, active bool, joinedAt time.Time) Member {
	return Member{
		id:         id,
		memberCode: memberCode,
		name:       name,
		active:     active,
		joinedAt:   joinedAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (m Member) ID() uuid.UUID       { return m.id }
func (m Member) MemberCode() string  { return m.memberCode }
func (m Member) Name() string        { return m.name }
func (m Member) Active() bool        { return m.active }
func (m Member) JoinedAt() time.Time { return m.joinedAt }
