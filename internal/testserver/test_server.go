// Package testserver wires a complete projectdash MCP server for tests.
package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/projectdash/internal/domain/project"
	"github.com/rpggio/projectdash/internal/domain/session"
	"github.com/rpggio/projectdash/internal/mcp"
	"github.com/rpggio/projectdash/internal/memory"
	"github.com/rpggio/projectdash/internal/sqlite"
)

// Now is the fixed clock every test server uses.
var Now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

type TestServer struct {
	Server   *sdkmcp.Server
	Projects *project.Service
	Sessions *session.Manager
	// Seeded holds the sample projects as stored, when seeding is on.
	Seeded []project.Project
}

type options struct {
	sqlite bool
	seed   bool
}

// Option configures a TestServer.
type Option func(*options)

// WithSQLite backs the server with the in-memory SQLite repository.
func WithSQLite() Option {
	return func(o *options) { o.sqlite = true }
}

// WithoutSeed starts the server with no projects.
func WithoutSeed() Option {
	return func(o *options) { o.seed = false }
}

func New(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	o := options{seed: true}
	for _, opt := range opts {
		opt(&o)
	}

	var repo project.Repository = memory.NewProjectRepository()
	if o.sqlite {
		db, err := sqlite.NewInMemory()
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })
		repo = sqlite.NewProjectRepository(db)
	}

	clock := func() time.Time { return Now }
	projectSvc := project.NewService(repo, nil)
	sessions := session.NewManager(projectSvc, clock, nil)

	ts := &TestServer{
		Projects: projectSvc,
		Sessions: sessions,
		Server: mcp.NewServer(mcp.Config{
			Projects:      projectSvc,
			Sessions:      sessions,
			Now:           clock,
			TransportMode: "stdio",
		}),
	}

	if o.seed {
		seeded, err := projectSvc.Seed(context.Background(), project.SampleProjects(Now))
		require.NoError(t, err)
		ts.Seeded = seeded
	}
	return ts
}

// Client is a connected MCP client. SessionID, when set, is sent as _meta.session_id.
type Client struct {
	t         *testing.T
	cs        *sdkmcp.ClientSession
	SessionID string
}

// Connect attaches a client over in-memory transports.
func (ts *TestServer) Connect(t *testing.T, sessionID string) *Client {
	t.Helper()
	ctx := context.Background()

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	ss, err := ts.Server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	cs, err := newClient().Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = cs.Close()
		_ = ss.Wait()
	})
	return &Client{t: t, cs: cs, SessionID: sessionID}
}

// ConnectHTTP serves the server over streamable HTTP and attaches a client to it.
func (ts *TestServer) ConnectHTTP(t *testing.T) *Client {
	t.Helper()

	handler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server { return ts.Server }, nil)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cs, err := newClient().Connect(context.Background(), &sdkmcp.StreamableClientTransport{Endpoint: srv.URL}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	return &Client{t: t, cs: cs}
}

// Close ends the client's transport session.
func (c *Client) Close() error {
	return c.cs.Close()
}

func newClient() *sdkmcp.Client {
	return sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
}

func (c *Client) call(name string, args any) *sdkmcp.CallToolResult {
	c.t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	params := &sdkmcp.CallToolParams{Name: name, Arguments: args}
	if c.SessionID != "" {
		params.Meta = sdkmcp.Meta{"session_id": c.SessionID}
	}
	res, err := c.cs.CallTool(context.Background(), params)
	require.NoError(c.t, err)
	require.NotEmpty(c.t, res.Content)
	return res
}

// Call invokes a tool that must succeed and decodes its JSON result into out.
func (c *Client) Call(name string, args any, out any) {
	c.t.Helper()
	res := c.call(name, args)
	text := textOf(c.t, res)
	require.False(c.t, res.IsError, "tool %s failed: %s", name, text)
	if out != nil {
		require.NoError(c.t, json.Unmarshal([]byte(text), out))
	}
}

// CallError invokes a tool that must fail and returns its APIError.
func (c *Client) CallError(name string, args any) mcp.APIError {
	c.t.Helper()
	res := c.call(name, args)
	text := textOf(c.t, res)
	require.True(c.t, res.IsError, "tool %s succeeded: %s", name, text)

	var apiErr mcp.APIError
	require.NoError(c.t, json.Unmarshal([]byte(text), &apiErr))
	return apiErr
}

func textOf(t *testing.T, res *sdkmcp.CallToolResult) string {
	t.Helper()
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "unexpected content %T", res.Content[0])
	return text.Text
}
