package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voyago/backoffice/pkg/metrics"
	"github.com/voyago/backoffice/pkg/result"
)

// statusFor maps a business error code to an HTTP status. Each handler
// file supplies one for its module; unknown codes map to 500.
type statusFor func(code string) int

// respond renders a service result. Success results are sent as-is with
// a 200 (or 201 for creations, chosen by the caller); failure results get
// their error code translated into the request locale and counted.
func (s *Server) respond(c *gin.Context, successStatus int, res result.Result, status statusFor) {
	if res.IsSuccess {
		if res.Message != "" {
			res = res.WithMessage(s.translator.Translate(res.Message, localeFrom(c)))
		}
		c.JSON(successStatus, res)
		return
	}
	s.respondFailure(c, status(res.Error), res)
}

// respondFailure renders a failure result with a translated message.
func (s *Server) respondFailure(c *gin.Context, httpStatus int, res result.Result) {
	metrics.BusinessFailures.WithLabelValues(res.Error).Inc()
	res = res.WithMessage(s.translator.Translate(res.Error, localeFrom(c)))
	c.JSON(httpStatus, res)
}

// respondInternal handles infrastructure errors that services surface as
// Go errors rather than business results.
func (s *Server) respondInternal(c *gin.Context, err error) {
	s.logger.Error("Request failed",
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	s.respondFailure(c, http.StatusInternalServerError, result.Fail("INTERNAL_ERROR"))
}

// respondBinding handles request body or parameter validation failures.
func (s *Server) respondBinding(c *gin.Context, code string, err error) {
	s.respondFailure(c, http.StatusBadRequest, result.FailWithDetails(code, err.Error()))
}

// abortWithResult is used by middleware to stop the chain with a
// translated failure envelope.
func (s *Server) abortWithResult(c *gin.Context, httpStatus int, res result.Result) {
	metrics.BusinessFailures.WithLabelValues(res.Error).Inc()
	res = res.WithMessage(s.translator.Translate(res.Error, localeFrom(c)))
	c.AbortWithStatusJSON(httpStatus, res)
}
