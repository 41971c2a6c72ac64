package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/destinations"
)

func destinationStatus(code string) int {
	switch code {
	case destinations.ErrDestinationNotFound:
		return http.StatusNotFound
	case destinations.ErrDestinationCountryAlreadyExists:
		return http.StatusConflict
	case destinations.ErrInvalidDestinationData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) createDestination(c *gin.Context) {
	var req destinations.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, destinations.ErrInvalidDestinationData, err)
		return
	}
	res, err := s.svc.Destinations.Create(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusCreated, res, destinationStatus)
}

func (s *Server) listDestinations(c *gin.Context) {
	res, err := s.svc.Destinations.FindAll(c.Request.Context())
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, destinationStatus)
}

func (s *Server) getDestination(c *gin.Context) {
	res, err := s.svc.Destinations.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, destinationStatus)
}

func (s *Server) updateDestination(c *gin.Context) {
	var req destinations.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, destinations.ErrInvalidDestinationData, err)
		return
	}
	res, err := s.svc.Destinations.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, destinationStatus)
}

func (s *Server) deleteDestination(c *gin.Context) {
	res, err := s.svc.Destinations.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, destinationStatus)
}

func (s *Server) deleteDestinations(c *gin.Context) {
	var req destinations.DeleteDestinationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, destinations.ErrInvalidDestinationData, err)
		return
	}
	res, err := s.svc.Destinations.DeleteMany(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, destinationStatus)
}
