package models

import "time"

// Status is the lifecycle label of a request. The labels are free-standing:
// any status may be overwritten with any other valid status at any time.
type Status string

const (
	StatusNew        Status = "Novo"
	StatusInProgress Status = "Em Andamento"
	StatusDone       Status = "Concluído"
)

// Priority is the urgency label of a request. Informational only.
type Priority string

const (
	PriorityLow    Priority = "Baixa"
	PriorityMedium Priority = "Média"
	PriorityHigh   Priority = "Alta"
)

// ValidStatuses enumerates the statuses a request may be set to.
var ValidStatuses = map[Status]struct{}{
	StatusNew:        {},
	StatusInProgress: {},
	StatusDone:       {},
}

// ValidPriorities enumerates the priorities a request may carry.
var ValidPriorities = map[Priority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
}

// Statuses and Priorities list the labels in display order for the
// dashboard counters.
var (
	Statuses   = []Status{StatusNew, StatusInProgress, StatusDone}
	Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}
)

// Member is a team participant who may originate or be assigned requests.
type Member struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedOn string `json:"joined_on"`
}

// Request is a unit of work raised by a member. Only its status changes
// after creation.
type Request struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requester_id"`
	AssigneeID  *int64    `json:"assignee_id"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	DueDate     string    `json:"due_date"`
}

// RequestView is a request enriched with the display names of its requester
// and assignee. Either name is empty when the referenced member is missing.
type RequestView struct {
	Request
	RequesterName string `json:"requester_name"`
	AssigneeName  string `json:"assignee_name"`
}

// Summary holds the dashboard aggregates. Every valid label is present in
// the maps, zero-valued when no request carries it.
type Summary struct {
	Total      int64              `json:"total"`
	ByStatus   map[Status]int64   `json:"by_status"`
	ByPriority map[Priority]int64 `json:"by_priority"`
}
