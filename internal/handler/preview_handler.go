package handler

import (
	"encoding/json"
	"os"

	"newsroom-be/internal/pkg/logger"
	"newsroom-be/pkg/richtext"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// PreviewHandler powers the editor's live preview: each document the editor
// sends over the socket comes back rendered, with the meta description the
// article would get.
type PreviewHandler struct {
	renderer *richtext.Renderer
	logger   logger.ILogger
}

func NewPreviewHandler(renderer *richtext.Renderer, log logger.ILogger) *PreviewHandler {
	return &PreviewHandler{
		renderer: renderer,
		logger:   log,
	}
}

type previewRequest struct {
	Body json.RawMessage `json:"body"`
}

type previewResponse struct {
	HTML    string `json:"html"`
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

// ServeWs upgrades the connection after validating the editor's token. The
// token arrives as a query param (browsers cannot set headers on websocket
// handshakes) or an Authorization header for tooling.
func (h *PreviewHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "default_secret"
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("PreviewHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("PreviewHandler", "Preview session started", nil)
			h.serveSession(conn)
			h.logger.Info("PreviewHandler", "Preview session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

func (h *PreviewHandler) serveSession(conn *websocket.Conn) {
	for {
		var req previewRequest
		if err := conn.ReadJSON(&req); err != nil {
			return // client gone or malformed frame, either way close
		}

		res := previewResponse{}
		if len(req.Body) == 0 {
			res.Error = "empty body"
		} else {
			content := richtext.ParseContent(string(req.Body))
			res.HTML = h.renderer.Render(content)
			res.Summary = richtext.ToPlainText(content)
		}

		if err := conn.WriteJSON(res); err != nil {
			return
		}
	}
}

func (h *PreviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/preview/ws", h.ServeWs)
}
