package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"equipe/internal/models"
)

const requestViewQuery = `SELECT r.id, r.title, r.description, r.requester_id, r.assignee_id,
        r.priority, r.status, r.created_at, r.due_date,
        m1.name AS requester_name, m2.name AS assignee_name
    FROM requests r
    LEFT JOIN members m1 ON r.requester_id = m1.id
    LEFT JOIN members m2 ON r.assignee_id = m2.id`

// ListRequests returns all requests enriched with requester and assignee
// display names, most recent first. A reference to a missing member yields an
// empty name rather than dropping the row. Filtering happens in the frontend
// over this full result set.
func (s *Store) ListRequests(ctx context.Context) ([]models.RequestView, error) {
	rows, err := s.db.QueryContext(ctx, requestViewQuery+` ORDER BY r.created_at DESC, r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	requests := []models.RequestView{}
	for rows.Next() {
		rv, err := scanRequestView(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, rv)
	}
	return requests, rows.Err()
}

// GetRequest fetches a single enriched request by id.
func (s *Store) GetRequest(ctx context.Context, id int64) (models.RequestView, error) {
	row := s.db.QueryRowContext(ctx, requestViewQuery+` WHERE r.id = ?`, id)
	rv, err := scanRequestView(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RequestView{}, fmt.Errorf("request not found")
	}
	if err != nil {
		return models.RequestView{}, err
	}
	return rv, nil
}

// CreateRequest persists a new request. The status always starts at Novo and
// the creation timestamp is stamped by the database; an unknown priority
// falls back to Média. The assignee and due date are optional.
func (s *Store) CreateRequest(ctx context.Context, req models.Request) (models.RequestView, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.RequestView{}, fmt.Errorf("request title must not be empty")
	}
	if req.RequesterID <= 0 {
		return models.RequestView{}, fmt.Errorf("request requester is required")
	}
	if _, ok := models.ValidPriorities[req.Priority]; !ok {
		req.Priority = models.PriorityMedium
	}

	var assignee sql.NullInt64
	if req.AssigneeID != nil && *req.AssigneeID > 0 {
		assignee = sql.NullInt64{Int64: *req.AssigneeID, Valid: true}
	}
	var dueDate sql.NullString
	if d := strings.TrimSpace(req.DueDate); d != "" {
		dueDate = sql.NullString{String: d, Valid: true}
	}
	var description sql.NullString
	if d := strings.TrimSpace(req.Description); d != "" {
		description = sql.NullString{String: d, Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO requests(title, description, requester_id, assignee_id, priority, status, due_date)
         VALUES(?, ?, ?, ?, ?, ?, ?)`,
		title, description, req.RequesterID, assignee, req.Priority, models.StatusNew, dueDate)
	if err != nil {
		return models.RequestView{}, fmt.Errorf("insert request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.RequestView{}, fmt.Errorf("request id: %w", err)
	}
	return s.GetRequest(ctx, id)
}

// SetStatus overwrites the status of a request. Any valid status may replace
// any other; no transition graph is enforced. An unknown id is a no-op, not
// an error.
func (s *Store) SetStatus(ctx context.Context, id int64, status models.Status) error {
	if _, ok := models.ValidStatuses[status]; !ok {
		return fmt.Errorf("invalid status %q", status)
	}
	if _, err := s.db.ExecContext(ctx, `UPDATE requests SET status = ? WHERE id = ?`, status, id); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return nil
}

// Summary aggregates request counts by status and by priority for the
// dashboard. Every valid label appears in the result, zero-valued when
// unused.
func (s *Store) Summary(ctx context.Context) (models.Summary, error) {
	sum := models.Summary{
		ByStatus:   make(map[models.Status]int64, len(models.Statuses)),
		ByPriority: make(map[models.Priority]int64, len(models.Priorities)),
	}
	for _, st := range models.Statuses {
		sum.ByStatus[st] = 0
	}
	for _, p := range models.Priorities {
		sum.ByPriority[p] = 0
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM requests`).Scan(&sum.Total); err != nil {
		return models.Summary{}, fmt.Errorf("count requests: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM requests GROUP BY status`)
	if err != nil {
		return models.Summary{}, fmt.Errorf("count by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var st models.Status
		var n int64
		if err := rows.Scan(&st, &n); err != nil {
			return models.Summary{}, fmt.Errorf("scan status count: %w", err)
		}
		sum.ByStatus[st] = n
	}
	if err := rows.Err(); err != nil {
		return models.Summary{}, err
	}

	prows, err := s.db.QueryContext(ctx, `SELECT priority, COUNT(*) FROM requests GROUP BY priority`)
	if err != nil {
		return models.Summary{}, fmt.Errorf("count by priority: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var p models.Priority
		var n int64
		if err := prows.Scan(&p, &n); err != nil {
			return models.Summary{}, fmt.Errorf("scan priority count: %w", err)
		}
		sum.ByPriority[p] = n
	}
	return sum, prows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRequestView(sc scanner) (models.RequestView, error) {
	var (
		rv            models.RequestView
		description   sql.NullString
		requesterID   sql.NullInt64
		assigneeID    sql.NullInt64
		dueDate       sql.NullString
		requesterName sql.NullString
		assigneeName  sql.NullString
	)
	err := sc.Scan(&rv.ID, &rv.Title, &description, &requesterID, &assigneeID,
		&rv.Priority, &rv.Status, &rv.CreatedAt, &dueDate, &requesterName, &assigneeName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RequestView{}, err
	}
	if err != nil {
		return models.RequestView{}, fmt.Errorf("scan request: %w", err)
	}

	rv.Description = description.String
	rv.RequesterID = requesterID.Int64
	if assigneeID.Valid {
		rv.AssigneeID = &assigneeID.Int64
	}
	rv.DueDate = dueDate.String
	rv.RequesterName = requesterName.String
	rv.AssigneeName = assigneeName.String
	return rv, nil
}
