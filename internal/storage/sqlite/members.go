package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"equipe/internal/models"
)

// ListMembers retrieves all members in insertion order.
func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, email, role, joined_on FROM members ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.JoinedOn); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// CreateMember persists a new member. The join date is stamped with the
// current date; members are never updated or deleted afterwards.
func (s *Store) CreateMember(ctx context.Context, name, email, role string) (models.Member, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	role = strings.TrimSpace(role)
	if name == "" || email == "" || role == "" {
		return models.Member{}, fmt.Errorf("member name, email and role must not be empty")
	}

	joinedOn := time.Now().Format("2006-01-02")
	res, err := s.db.ExecContext(ctx, `INSERT INTO members(name, email, role, joined_on) VALUES(?, ?, ?, ?)`,
		name, email, role, joinedOn)
	if err != nil {
		return models.Member{}, fmt.Errorf("insert member: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Member{}, fmt.Errorf("member id: %w", err)
	}
	return s.GetMember(ctx, id)
}

// GetMember fetches a single member by id.
func (s *Store) GetMember(ctx context.Context, id int64) (models.Member, error) {
	var m models.Member
	err := s.db.QueryRowContext(ctx, `SELECT id, name, email, role, joined_on FROM members WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Role, &m.JoinedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Member{}, fmt.Errorf("member not found")
	}
	if err != nil {
		return models.Member{}, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}
