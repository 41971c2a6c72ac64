package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/packages"
)

func packageStatus(code string) int {
	switch code {
	case packages.ErrPackageNotFound:
		return http.StatusNotFound
	case packages.ErrInvalidPackageData:
		return http.StatusBadRequest
	case packages.ErrPackageNotAvailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) createPackage(c *gin.Context) {
	var req packages.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, packages.ErrInvalidPackageData, err)
		return
	}
	res, err := s.svc.Packages.Create(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusCreated, res, packageStatus)
}

func (s *Server) listPackages(c *gin.Context) {
	res, err := s.svc.Packages.FindAll(c.Request.Context())
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, packageStatus)
}

func (s *Server) getPackage(c *gin.Context) {
	res, err := s.svc.Packages.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, packageStatus)
}

func (s *Server) updatePackage(c *gin.Context) {
	var req packages.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, packages.ErrInvalidPackageData, err)
		return
	}
	res, err := s.svc.Packages.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, packageStatus)
}

func (s *Server) deletePackage(c *gin.Context) {
	res, err := s.svc.Packages.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, packageStatus)
}

func (s *Server) deletePackages(c *gin.Context) {
	var req packages.DeletePackagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondBinding(c, packages.ErrInvalidPackageData, err)
		return
	}
	res, err := s.svc.Packages.DeleteMany(c.Request.Context(), req)
	if err != nil {
		s.respondInternal(c, err)
		return
	}
	s.respond(c, http.StatusOK, res, packageStatus)
}
