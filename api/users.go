package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/users"
)

func userStatus(code string) int {
	switch code {
	case users.ErrUserNotFound:
		return http.StatusNotFound
	case users.ErrUserEmailAlreadyExists:
		return http.StatusConflict
	case users.ErrInvalidUserData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) createUser(c *gin.Context) {
	var req users.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, users.ErrInvalidUserData, err)
		return
	}
	res, err := s.svc.Users.Create(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusCreated, res, userStatus)
}

func (s *Server) listUsers(c *gin.Context) {
	res, err := s.svc.Users.FindAll(c.Request.Context())
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, userStatus)
}

func (s *Server) getUser(c *gin.Context) {
	res, err := s.svc.Users.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, userStatus)
}

func (s *Server) updateUser(c *gin.Context) {
	var req users.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, users.ErrInvalidUserData, err)
		return
	}
	res, err := s.svc.Users.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, userStatus)
}

func (s *Server) deleteUser(c *gin.Context) {
	res, err := s.svc.Users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, userStatus)
}

func (s *Server) deleteUsers(c *gin.Context) {
	var req users.DeleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, users.ErrInvalidUserData, err)
		return
	}
	res, err := s.svc.Users.DeleteMany(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, userStatus)
}
