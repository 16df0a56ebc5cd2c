package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const projectName = "judgeline"

var (
	projectLogger *logrus.Logger
	once          sync.Once
)

func initialize() {
	projectLogger = logrus.New()
	projectLogger.SetOutput(os.Stderr)
	projectLogger.SetLevel(logrus.InfoLevel)
	projectLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// GetProjectLogger returns the shared logger, tagged with the project name.
func GetProjectLogger() *logrus.Entry {
	once.Do(initialize)
	return projectLogger.WithField("name", projectName)
}

// SetLevel parses a level name ("debug", "info", ...) and applies it to the project logger.
func SetLevel(level string) error {
	once.Do(initialize)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	projectLogger.SetLevel(lvl)
	return nil
}
