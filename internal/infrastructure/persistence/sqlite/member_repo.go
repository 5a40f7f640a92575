package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kspdigital/koperasi-core/internal/domain/model"
	"github.com/kspdigital/koperasi-core/internal/domain/port"
)

var _ port.MemberRepository = (*MemberRepo)(nil)

// MemberRepo implements port.MemberRepository on SQLite.
type MemberRepo struct {
	db *sql.DB
}

// NewMemberRepo creates a new SQLite-backed member repository.
func NewMemberRepo(db *sql.DB) *MemberRepo {
	return &MemberRepo{db: db}
}

// FindByID retrieves a member by ID.
func (r *MemberRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Member, error) {
	row := r.db.QueryRowContext(ctx, selectMemberColumns+` WHERE id = ?`, id)
	member, err := scanMemberRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Member{}, port.ErrMemberNotFound
	}
	return member, err
}

// List returns the whole member roster ordered by member code.
func (r *MemberRepo) List(ctx context.Context) ([]model.Member, error) {
	rows, err := r.db.QueryContext(ctx, selectMemberColumns+` ORDER BY member_code`)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		member, err := scanMemberRow(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

const selectMemberColumns = `
	SELECT id, member_code, name, active, joined_at
	FROM members`

func scanMemberRow(s scannable) (model.Member, error) {
	var (
		id         uuid.UUID
		memberCode string
		name       string
		active     bool
		joinedAt   time.Time
	)

	if err := s.Scan(&id, &memberCode, &name, &active, &joinedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, err
		}
		return model.Member{}, fmt.Errorf("scan member: %w", err)
	}

	return model.ReconstructMember(id, memberCode, name, active, joinedAt), nil
}
