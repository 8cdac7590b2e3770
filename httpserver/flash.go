package httpserver

import (
	"net/http"
	"time"

	"contactbook/pkg/flash"

	"github.com/labstack/echo/v4"
)

const (
	flashCookieName = "flash"

	// maxPendingFlashes bounds the cookie for clients that never follow the
	// redirect. The oldest messages are dropped first.
	maxPendingFlashes = 5
)

// addFlash queues msg for the next rendered page. Messages already pending
// in the request cookie are kept in front of it.
func (s *Server) addFlash(c echo.Context, msg flash.Message) error {
	messages := append(s.readFlashes(c), msg)
	if len(messages) > maxPendingFlashes {
		messages = messages[len(messages)-maxPendingFlashes:]
	}

	token, err := s.Flash.Encode(messages)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.Flash.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// popFlashes returns the pending messages and expires the cookie so they are
// shown exactly once.
func (s *Server) popFlashes(c echo.Context) []flash.Message {
	if _, err := c.Cookie(flashCookieName); err != nil {
		return nil
	}

	messages := s.readFlashes(c)
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return messages
}

// readFlashes decodes the request cookie. Tampered or expired cookies count
// as empty.
func (s *Server) readFlashes(c echo.Context) []flash.Message {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	messages, err := s.Flash.Decode(cookie.Value)
	if err != nil {
		s.Logger.Debugw("dropping flash cookie", "error", err, "request_id", s.requestID(c))
		return nil
	}
	return messages
}
