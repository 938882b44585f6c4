// Package convert orchestrates one Markdown-to-document conversion: open a
// session, create the remote document, then stream classified lines through
// the gateway until the input is exhausted or a call fails.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/wordbridge/internal/classify"
	"github.com/dgallion1/wordbridge/internal/document"
)

// Gateway is the session-scoped remote surface the driver dispatches to.
type Gateway interface {
	Open(ctx context.Context) error
	CreateDocument(ctx context.Context, h document.Handle) error
	Invoke(ctx context.Context, h document.Handle, u document.Unit) error
	Close() error
}

// GatewayFactory builds a fresh gateway for each conversion, so no session
// or document state can leak between conversions.
type GatewayFactory func() Gateway

// Request carries one conversion's input.
type Request struct {
	Markdown string `json:"markdown"`
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Author   string `json:"author"`
}

// Result is the single aggregated outcome of a conversion. Message starts
// with "Error: " whenever OK is false.
type Result struct {
	OK       bool   `json:"ok"`
	Filename string `json:"filename"`
	Message  string `json:"message"`
}

// Converter runs conversions against gateways produced by its factory.
type Converter struct {
	newGateway GatewayFactory
	log        *slog.Logger
}

func New(factory GatewayFactory, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.Default()
	}
	return &Converter{newGateway: factory, log: log}
}

// Convert processes the request sequentially: each remote call completes
// before the next line is classified. The first failing call aborts the
// remaining lines; content already applied remotely stays applied, so the
// caller knows exactly where the document stops.
func (c *Converter) Convert(ctx context.Context, req Request) Result {
	filename := document.NormalizeFilename(req.Filename)

	gw := c.newGateway()
	// The session is released on every exit path, including init failure.
	defer gw.Close()

	if err := gw.Open(ctx); err != nil {
		c.log.Error("session init failed", "filename", filename, "error", err)
		return failure(filename, fmt.Errorf("failed to initialize session: %w", err))
	}

	handle := document.Handle{Filename: filename, Title: req.Title, Author: req.Author}
	if err := gw.CreateDocument(ctx, handle); err != nil {
		c.log.Error("create document failed", "filename", filename, "error", err)
		return failure(filename, fmt.Errorf("failed to create document: %w", err))
	}

	for _, line := range strings.Split(req.Markdown, "\n") {
		unit, ok := classify.Classify(line)
		if !ok {
			continue
		}
		if err := gw.Invoke(ctx, handle, unit); err != nil {
			c.log.Error("content dispatch failed",
				"filename", filename, "kind", unit.Kind, "error", err)
			return failure(filename, fmt.Errorf("failed to add content: %w", err))
		}
		c.log.Debug("unit dispatched", "kind", unit.Kind, "level", unit.Level)
	}

	c.log.Info("document created", "filename", filename)
	return Result{
		OK:       true,
		Filename: filename,
		Message:  fmt.Sprintf("document '%s' created successfully", filename),
	}
}

func failure(filename string, err error) Result {
	return Result{Filename: filename, Message: "Error: " + err.Error()}
}
