package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voyago/backoffice/internal/auth"
	"github.com/voyago/backoffice/internal/i18n"
	"github.com/voyago/backoffice/pkg/metrics"
	"github.com/voyago/backoffice/pkg/models"
	"github.com/voyago/backoffice/pkg/result"
)

const (
	ctxKeyLocale = "userLanguage"
	ctxKeyClaims = "authClaims"
)

// localeMiddleware resolves the response language for the request. It
// inspects the bearer token if one is present and looks up the user's
// preferred language; anything that goes wrong degrades to the default
// locale. The guard never rejects a request.
func (s *Server) localeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.DefaultLocale

		if token := bearerToken(c); token != "" {
			if claims, err := s.tokens.Verify(token); err == nil {
				if user, err := s.svc.Users.Repo().FindByEmail(c.Request.Context(), claims.Email); err == nil && user != nil && user.LanguageID != "" {
					locale = user.LanguageID
				}
			}
		}

		c.Set(ctxKeyLocale, locale)
		c.Next()
	}
}

// authMiddleware requires a valid bearer token and stores its claims in
// the request context.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			s.abortWithResult(c, http.StatusUnauthorized, result.Fail(auth.ErrUnauthorized))
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			s.abortWithResult(c, http.StatusUnauthorized, result.Fail(auth.ErrUnauthorized))
			return
		}

		c.Set(ctxKeyClaims, claims)
		c.Next()
	}
}

// requireRoles allows the request through only when the authenticated
// user holds one of the given roles.
func (s *Server) requireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil {
			s.abortWithResult(c, http.StatusUnauthorized, result.Fail(auth.ErrUnauthorized))
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		s.abortWithResult(c, http.StatusForbidden, result.Fail(auth.ErrForbidden))
	}
}

func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func claimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ctxKeyClaims)
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func localeFrom(c *gin.Context) string {
	return c.GetString(ctxKeyLocale)
}
