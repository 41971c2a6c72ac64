package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/uploads"
	"github.com/voyago/backoffice/pkg/result"
)

func uploadStatus(code string) int {
	switch code {
	case uploads.ErrInvalidUploadData, uploads.ErrUnsupportedFileType:
		return http.StatusBadRequest
	case uploads.ErrFileNotFound:
		return http.StatusNotFound
	case uploads.ErrUploadFailed, uploads.ErrDeleteFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) uploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		s.respondFailure(c, http.StatusBadRequest, result.Fail(uploads.ErrInvalidUploadData))
		return
	}

	file, err := header.Open()
	if err != nil {
		s.respondFailure(c, http.StatusInternalServerError, result.Fail(uploads.ErrUploadFailed))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondFailure(c, http.StatusInternalServerError, result.Fail(uploads.ErrUploadFailed))
		return
	}

	res := s.svc.Uploads.SaveImage(data, header.Filename, header.Header.Get("Content-Type"))
	s.respond(c, http.StatusCreated, res, uploadStatus)
}

func (s *Server) deleteUpload(c *gin.Context) {
	res := s.svc.Uploads.DeleteFile(c.Param("fileName"))
	s.respond(c, http.StatusOK, res, uploadStatus)
}
