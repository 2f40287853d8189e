package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleSummary returns the dashboard aggregates: total request count plus
// per-status and per-priority breakdowns.
func (s *Server) handleSummary(c *gin.Context) {
	summary, err := s.store.Summary(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"summary": summary})
}
