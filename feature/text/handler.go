package text

import (
	"strings"

	"text-share/core/logger"
	"text-share/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the shared text.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the text routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/submit-text", h.HandleSubmitText)
	app.Get("/get-text", h.HandleGetText)
}

// HandleSubmitText replaces the shared text.
// @Summary Submit Text
// @Description Replaces the shared text. A missing or malformed text field stores an empty string. Accepts JSON or form-encoded bodies.
// @Tags text
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body SubmitRequest false "Text to store"
// @Success 200 {object} SubmitResponse
// @Router /submit-text [post]
func (h *Handler) HandleSubmitText(c *fiber.Ctx) error {
	text := textFromBody(c)
	h.service.Submit(text)

	logger.WithRayID(h.service.logger, c).Debug("Text submitted", zap.Int("length", len(text)))

	return c.JSON(SubmitResponse{Success: true})
}

// HandleGetText returns the shared text.
// @Summary Get Text
// @Description Returns the most recently submitted text, or an empty string if nothing was submitted yet.
// @Tags text
// @Produce json
// @Success 200 {object} TextResponse
// @Router /get-text [get]
func (h *Handler) HandleGetText(c *fiber.Ctx) error {
	return c.JSON(TextResponse{Text: h.service.Retrieve()})
}

// textFromBody extracts the text field from a JSON or form-encoded body.
// Anything it cannot read yields "".
func textFromBody(c *fiber.Ctx) string {
	ctype := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(ctype, fiber.MIMEApplicationJSON):
		var req SubmitRequest
		if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
			return ""
		}
		if isFalsy(req.Text) {
			return ""
		}
		return utils.ToString(req.Text)
	case strings.HasPrefix(ctype, fiber.MIMEApplicationForm):
		return string(c.Request().PostArgs().Peek("text"))
	default:
		return ""
	}
}

// isFalsy reports whether a decoded JSON value counts as "no text":
// null, false, 0 and the empty string.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	default:
		return false
	}
}
