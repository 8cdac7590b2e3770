package httpserver

import (
	"contactbook/contact"
	"contactbook/pkg/config"

	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		s.Config = cfg
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		s.Logger = l
		return nil
	}
}

func WithContactService(svc contact.Service) Options {
	return func(s *Server) error {
		s.ContactService = svc
		return nil
	}
}
