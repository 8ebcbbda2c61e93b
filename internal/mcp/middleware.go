package mcp

import (
	"context"
	"sync"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/projectdash/internal/domain/session"
)

type contextKey int

const sessionIDKey contextKey = iota

// getSessionID extracts the client session key from context.
func getSessionID(ctx context.Context) string {
	v, _ := ctx.Value(sessionIDKey).(string)
	return v
}

// sessionReaper closes a controller once the transport session it is keyed
// by has ended.
type sessionReaper struct {
	sessions *session.Manager

	mu      sync.Mutex
	watched map[string]bool
}

func newSessionReaper(sessions *session.Manager) *sessionReaper {
	return &sessionReaper{sessions: sessions, watched: make(map[string]bool)}
}

// watch starts one waiter per transport session. Keys supplied through
// _meta outlive any single connection and are left alone.
func (r *sessionReaper) watch(req sdkmcp.Request, key string) {
	ss, ok := serverSession(req)
	if !ok || key == "" || ss.ID() != key {
		return
	}

	r.mu.Lock()
	if r.watched[key] {
		r.mu.Unlock()
		return
	}
	r.watched[key] = true
	r.mu.Unlock()

	go func() {
		_ = ss.Wait()
		r.sessions.Close(key)
		r.mu.Lock()
		delete(r.watched, key)
		r.mu.Unlock()
	}()
}

func serverSession(req sdkmcp.Request) (ss *sdkmcp.ServerSession, ok bool) {
	if req == nil {
		return nil, false
	}
	defer func() {
		if recover() != nil {
			ss, ok = nil, false
		}
	}()
	ss, ok = req.GetSession().(*sdkmcp.ServerSession)
	return ss, ok && ss != nil
}

// sessionMiddleware picks the client session key: the Mcp-Session-Id header
// (HTTP), then _meta.session_id, then the transport session id. Stdio
// clients without _meta share the "" key.
func sessionMiddleware(reaper *sessionReaper) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			var sessionID string

			extra := req.GetExtra()
			if extra != nil && extra.Header != nil {
				sessionID = extra.Header.Get("Mcp-Session-Id")
			}

			// Some notifications (like "initialized") carry nil params.
			if sessionID == "" {
				if params := safeParams(req); params != nil {
					func() {
						defer func() { recover() }()
						if meta := params.GetMeta(); meta != nil {
							if sid, ok := meta["session_id"].(string); ok {
								sessionID = sid
							}
						}
					}()
				}
			}

			if sessionID == "" {
				sessionID = safeSessionID(req)
			}

			if sessionID != "" {
				ctx = context.WithValue(ctx, sessionIDKey, sessionID)
				reaper.watch(req, sessionID)
			}
			return next(ctx, method, req)
		}
	}
}
