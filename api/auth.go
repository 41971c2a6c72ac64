package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/auth"
)

func authStatus(code string) int {
	switch code {
	case auth.ErrEmailAlreadyExists:
		return http.StatusConflict
	case auth.ErrWeakPassword, auth.ErrInvalidEmailFormat:
		return http.StatusBadRequest
	case auth.ErrInvalidCredentials, auth.ErrUserNotFound, auth.ErrAccountInactive, auth.ErrUnauthorized:
		return http.StatusUnauthorized
	case auth.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, auth.ErrInvalidEmailFormat, err)
		return
	}
	res, err := s.svc.Auth.Register(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusCreated, res, authStatus)
}

func (s *Server) login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, auth.ErrInvalidCredentials, err)
		return
	}
	res, err := s.svc.Auth.Login(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, authStatus)
}
