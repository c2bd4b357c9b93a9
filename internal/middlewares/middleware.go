package middlewares

import "github.com/sirupsen/logrus"

type middleware struct {
	log *logrus.Logger
}

func NewMiddleware(log *logrus.Logger) *middleware {
	return &middleware{
		log: log,
	}
}
