package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/scheduling-console/configs"
	"github.com/maheshrc27/scheduling-console/internal/session"
	"github.com/maheshrc27/scheduling-console/pkg/utils"
)

const WorkspaceKey = "workspace"

type SessionMiddleware struct {
	store *session.Store
	cfg   config.Config
}

func NewSessionMiddleware(cfg config.Config, store *session.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store, cfg: cfg}
}

// SessionMiddleware attaches the browser's workspace to the request,
// creating one when the cookie is missing, invalid or points at an evicted
// workspace. The cookie is reissued on every request so it only expires
// after SessionTTL of inactivity, like the workspace itself.
func (m *SessionMiddleware) SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ws := m.lookup(c.Cookies(m.cfg.CookieName))
		if ws == nil {
			created, err := m.store.Create()
			if err != nil {
				return err
			}
			ws = created
		}

		if err := m.issueCookie(c, ws.ID); err != nil {
			return err
		}

		c.Locals(WorkspaceKey, ws)
		return c.Next()
	}
}

func (m *SessionMiddleware) lookup(tokenString string) *session.Workspace {
	if tokenString == "" {
		return nil
	}

	claims, err := utils.ValidateToken(m.cfg.SecretKey, tokenString)
	if err != nil {
		slog.Info("Session token validation failed", "error", err)
		return nil
	}

	ws, ok := m.store.Get(claims.SessionID)
	if !ok {
		return nil
	}
	return ws
}

func (m *SessionMiddleware) issueCookie(c *fiber.Ctx, sessionID string) error {
	token, err := utils.GenerateToken(m.cfg.SecretKey, sessionID, m.cfg.SessionTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.cfg.SessionTTL.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
