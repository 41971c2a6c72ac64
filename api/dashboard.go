package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func dashboardStatus(code string) int {
	return http.StatusInternalServerError
}

func (s *Server) dashboardStats(c *gin.Context) {
	res, err := s.svc.Dashboard.GetStats(c.Request.Context())
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, dashboardStatus)
}
