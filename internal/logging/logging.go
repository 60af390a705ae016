// Package logging builds the structured logger used by the command line
// tools. Library packages do not log.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/thesyncim/govorbis/internal/config"
)

// New returns a logger writing to out at the configured level and format.
func New(cfg config.Config, out io.Writer) (*logrus.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log, nil
}
