// Package cmd implements the swlog subcommands.
package cmd

import (
	"context"
	"strings"

	logger "github.com/Subwoof01/sw-logger"
)

// Emit appends a single message to the log.
type Emit struct {
	Level   string   `default:"info" enum:"debug,info,warn,warning,error" help:"Severity of the message." short:"l"`
	To      string   `help:"Write to this file instead of the configured default path." optional:"" placeholder:"PATH" type:"path"`
	Message []string `arg:"" help:"Message text."`
}

// Run emits the message through the process-wide logger.
// A message below the configured threshold is silently discarded; a failed
// file write is returned and becomes the process exit status.
func (e *Emit) Run(_ context.Context) error {
	var opts []logger.Option

	if e.To != "" {
		opts = append(opts, logger.WithPath(e.To))
	}

	_, err := logger.Log(
		logger.ParseLevel(e.Level),
		strings.Join(e.Message, " "),
		opts...,
	)

	return err
}
