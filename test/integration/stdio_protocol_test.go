package integration_test

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// serverBinary locates a built projectdash binary, skipping the test when there is none.
func serverBinary(t *testing.T) string {
	t.Helper()
	for _, path := range []string{"./bin/projectdash", "../../bin/projectdash"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Skip("Server binary not found. Run 'go build -o bin/projectdash ./cmd/projectdash' first.")
	return ""
}

func serverCommand(ctx context.Context, binaryPath string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, binaryPath, "serve")
	cmd.Env = append(os.Environ(),
		"PROJECTDASH_TRANSPORT=stdio",
		"PROJECTDASH_STORE_BACKEND=memory",
		"PROJECTDASH_SEED=true",
		"PROJECTDASH_LOG_LEVEL=debug",
	)
	return cmd
}

func callText(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "tools/call %s failed", name)
	require.NotEmpty(t, result.Content, "%s returned no content", name)
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "%s should return text content", name)
	return text.Text, result.IsError
}

// TestStdioProtocolCompliance drives the server binary over stdio with the SDK client.
func TestStdioProtocolCompliance(t *testing.T) {
	binaryPath := serverBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: serverCommand(ctx, binaryPath)}, nil)
	require.NoError(t, err, "Failed to connect to server")
	defer session.Close()

	t.Run("ServerInfo", func(t *testing.T) {
		initResult := session.InitializeResult()
		require.NotNil(t, initResult)
		require.NotNil(t, initResult.ServerInfo)
		require.Equal(t, "projectdash", initResult.ServerInfo.Name)
	})

	t.Run("ListTools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err, "tools/list failed")

		toolNames := make(map[string]bool)
		for _, tool := range tools.Tools {
			toolNames[tool.Name] = true
		}
		for _, name := range []string{
			"list_projects", "get_project", "open_create", "open_edit", "change_field",
			"submit_form", "cancel_form", "get_form", "delete_project", "select_project",
			"clear_selection", "get_selection", "set_view",
		} {
			require.True(t, toolNames[name], "Missing expected tool: %s", name)
		}
	})

	t.Run("ListSeededProjects", func(t *testing.T) {
		text, isErr := callText(t, ctx, session, "list_projects", nil)
		require.False(t, isErr, "list_projects returned error: %s", text)

		var resp struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal([]byte(text), &resp))
		require.Equal(t, 4, resp.Total)
	})

	t.Run("CreateProject", func(t *testing.T) {
		_, isErr := callText(t, ctx, session, "open_create", nil)
		require.False(t, isErr)

		text, isErr := callText(t, ctx, session, "submit_form", nil)
		require.True(t, isErr)
		require.Contains(t, text, "VALIDATION_FAILED")

		_, isErr = callText(t, ctx, session, "change_field", map[string]any{"field": "title", "value": "Stdio Project"})
		require.False(t, isErr)
		_, isErr = callText(t, ctx, session, "change_field", map[string]any{"field": "description", "value": "Created over stdio"})
		require.False(t, isErr)

		text, isErr = callText(t, ctx, session, "submit_form", nil)
		require.False(t, isErr, "submit_form returned error: %s", text)
		require.Contains(t, text, "Stdio Project")
	})
}

// TestStdioProtocol_StdoutHygiene verifies that the server doesn't write
// anything to stdout except valid JSON-RPC messages.
func TestStdioProtocol_StdoutHygiene(t *testing.T) {
	binaryPath := serverBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := serverCommand(ctx, binaryPath)

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	stderr, err := cmd.StderrPipe()
	require.NoError(t, err)

	require.NoError(t, cmd.Start())

	initReq := `{"jsonrpc":"2.0","method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}},"id":1}`
	_, err = stdin.Write([]byte(initReq + "\n"))
	require.NoError(t, err)

	done := make(chan struct{})
	var stdoutBytes, stderrBytes []byte
	go func() {
		stdoutBytes, _ = readWithTimeout(stdout, 2*time.Second)
		stderrBytes, _ = readWithTimeout(stderr, 2*time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		t.Fatal("Timeout waiting for server response")
	}

	stdin.Close()
	cmd.Process.Kill()
	cmd.Wait()

	require.NotEmpty(t, stdoutBytes, "Server produced no stdout output")
	require.True(t, stdoutBytes[0] == '{', "First character of stdout should be '{', got: %q", string(stdoutBytes[:min(50, len(stdoutBytes))]))

	// Seeding logs at info, so stderr carries the logs
	require.Contains(t, string(stderrBytes), "seeded sample projects")
}

func readWithTimeout(r interface{ Read([]byte) (int, error) }, timeout time.Duration) ([]byte, error) {
	result := make([]byte, 0, 4096)
	buf := make([]byte, 1024)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		done := make(chan struct{})
		var n int
		var err error
		go func() {
			n, err = r.Read(buf)
			close(done)
		}()

		select {
		case <-done:
			if n > 0 {
				result = append(result, buf[:n]...)
			}
			if err != nil {
				return result, err
			}
		case <-time.After(100 * time.Millisecond):
			if len(result) > 0 {
				return result, nil
			}
		}
	}
	return result, nil
}
