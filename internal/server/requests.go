package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"equipe/internal/models"
)

type createRequestPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RequesterID int64  `json:"requester_id"`
	AssigneeID  *int64 `json:"assignee_id"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

type statusPayload struct {
	Status string `json:"status"`
}

// handleListRequests returns every request with resolved member names. The
// frontend filters this set client-side.
func (s *Server) handleListRequests(c *gin.Context) {
	requests, err := s.store.ListRequests(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"requests": requests})
}

// handleCreateRequest opens a new request. Title and requester are required;
// everything else is optional or defaulted by the store.
func (s *Server) handleCreateRequest(c *gin.Context) {
	var req createRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("title is required"))
		return
	}
	if req.RequesterID <= 0 {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("requester is required"))
		return
	}

	view, err := s.store.CreateRequest(c.Request.Context(), models.Request{
		Title:       req.Title,
		Description: req.Description,
		RequesterID: req.RequesterID,
		AssigneeID:  req.AssigneeID,
		Priority:    models.Priority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"request": view})
}

// handleSetStatus overwrites the status of a request. The label must be one
// of the three valid statuses; an unknown request id succeeds without
// changing anything.
func (s *Server) handleSetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req statusPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	status := models.Status(req.Status)
	if _, valid := models.ValidStatuses[status]; !valid {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("invalid status %q", req.Status))
		return
	}

	if err := s.store.SetStatus(c.Request.Context(), id, status); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": status})
}
