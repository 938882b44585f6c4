// Package wordmcp is the client for the word document-building MCP service.
//
// A Client is scoped to one conversion: Open runs the MCP initialize
// handshake, the tool operations dispatch against the open session, and
// Close releases it. The client keeps no document identity between calls;
// every operation carries the document handle explicitly.
package wordmcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dgallion1/wordbridge/internal/document"
)

// Phases a gateway call can fail in.
const (
	PhaseInitialize = "initialize"
	PhaseCreate     = "create"
	PhaseContent    = "content"
)

// ErrNotOpen is returned when a tool operation is attempted before Open.
var ErrNotOpen = errors.New("session not open")

// GatewayError wraps a failed remote call with the phase it failed in.
type GatewayError struct {
	Phase string
	Err   error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %v", e.Phase, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Client drives the word MCP service over streamable HTTP.
type Client struct {
	endpoint  string
	transport mcp.Transport
	session   *mcp.ClientSession
}

// Option configures a Client.
type Option func(*Client)

// WithTransport overrides the streamable HTTP transport, mainly for tests.
func WithTransport(t mcp.Transport) Option {
	return func(c *Client) { c.transport = t }
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{endpoint: endpoint}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Open connects to the service and performs the MCP initialize handshake.
// It must succeed before any tool operation is issued.
func (c *Client) Open(ctx context.Context) error {
	transport := c.transport
	if transport == nil {
		transport = &mcp.StreamableClientTransport{
			Endpoint:   c.endpoint,
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
		}
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "wordbridge",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return &GatewayError{Phase: PhaseInitialize, Err: err}
	}
	c.session = session
	return nil
}

// Close releases the session. Safe to call when Open never succeeded.
func (c *Client) Close() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// Typed argument structs, one per remote tool.

type createDocumentArgs struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
	Author   string `json:"author"`
}

type addHeadingArgs struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
	Level    int    `json:"level"`
}

type addParagraphArgs struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
	Style    string `json:"style"`
}

// CreateDocument issues the one create_document call of a conversion.
func (c *Client) CreateDocument(ctx context.Context, h document.Handle) error {
	err := c.call(ctx, "create_document", createDocumentArgs{
		Filename: h.Filename,
		Title:    h.Title,
		Author:   h.Author,
	})
	if err != nil {
		return &GatewayError{Phase: PhaseCreate, Err: err}
	}
	return nil
}

// Invoke dispatches one structural unit as a tool call against the open
// session. List items render as bulleted paragraphs: the service has no
// dedicated list tool.
func (c *Client) Invoke(ctx context.Context, h document.Handle, u document.Unit) error {
	var err error
	switch u.Kind {
	case document.KindHeading:
		err = c.call(ctx, "add_heading", addHeadingArgs{
			Filename: h.Filename,
			Text:     u.Text,
			Level:    u.Level,
		})
	case document.KindListItem:
		err = c.call(ctx, "add_paragraph", addParagraphArgs{
			Filename: h.Filename,
			Text:     "• " + u.Text,
			Style:    document.StyleBullet,
		})
	case document.KindParagraph:
		err = c.call(ctx, "add_paragraph", addParagraphArgs{
			Filename: h.Filename,
			Text:     u.Text,
			Style:    document.StyleNormal,
		})
	default:
		err = fmt.Errorf("unknown unit kind %q", u.Kind)
	}
	if err != nil {
		return &GatewayError{Phase: PhaseContent, Err: err}
	}
	return nil
}

// call runs one request/response round trip. Tool-level errors carried in
// the result are surfaced the same way as transport errors.
func (c *Client) call(ctx context.Context, name string, args any) error {
	if c.session == nil {
		return ErrNotOpen
	}
	res, err := c.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := res.GetError(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
