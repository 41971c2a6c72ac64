package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/notifications"
)

func notificationStatus(code string) int {
	switch code {
	case notifications.ErrNotificationNotFound, notifications.ErrUserNotFound:
		return http.StatusNotFound
	case notifications.ErrInvalidNotificationData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) createNotification(c *gin.Context) {
	var req notifications.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, notifications.ErrInvalidNotificationData, err)
		return
	}
	res, err := s.svc.Notifications.Create(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusCreated, res, notificationStatus)
}

func (s *Server) listNotificationsByUser(c *gin.Context) {
	res, err := s.svc.Notifications.FindAllByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, notificationStatus)
}

func (s *Server) markNotificationRead(c *gin.Context) {
	res, err := s.svc.Notifications.MarkAsRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, notificationStatus)
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	res, err := s.svc.Notifications.MarkAllAsRead(c.Request.Context(), c.Param("userId"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, notificationStatus)
}

func (s *Server) deleteNotification(c *gin.Context) {
	res, err := s.svc.Notifications.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, notificationStatus)
}
