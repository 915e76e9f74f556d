package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New собирает логгер приложения: JSON уровня info в релизном режиме,
// текстовый вывод с debug-уровнем в остальных окружениях.
// LOG_LEVEL переопределяет уровень в любом режиме.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		l.SetLevel(logrus.DebugLevel)
	}

	if lvl, lvlErr := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); lvlErr == nil {
		l.SetLevel(lvl)
	}
	return l
}
