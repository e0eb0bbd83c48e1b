// Package slog provides logging decorators for razorgen services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/razorgen"
)

// Ensure LoggingConverter implements razorgen.Converter.
var _ razorgen.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with per-document logging.
type LoggingConverter struct {
	next   razorgen.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next razorgen.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(doc *razorgen.Document) (artifacts []*razorgen.Artifact, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("convert",
			"input", doc.Path,
			"artifacts", len(artifacts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(doc)
}
