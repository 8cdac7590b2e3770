package httpserver

import (
	"net/http"

	"contactbook/pkg/sentry"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck reports whether the server is up and its store reachable.
func (s *Server) healthCheck(c echo.Context) error {
	if err := s.ContactService.Ping(c.Request().Context()); err != nil {
		s.Logger.Warnw("store ping failed", "error", err, "request_id", s.requestID(c))
		sentry.WithContext(c).
			WithTags(map[string]string{"check": "store"}).
			WithExtras(map[string]interface{}{"error": err.Error()}).
			Warning("store ping failed")
		return c.JSON(http.StatusServiceUnavailable, APIResponse{
			Code:    "503",
			Message: http.StatusText(http.StatusServiceUnavailable),
			Result:  map[string]string{"status": "UNAVAILABLE"},
		})
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "OK",
	})
}
