package pages

import (
	"io/fs"
	"path"
	"strings"

	"text-share/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the HTML pages and their static assets.
type Handler struct {
	fsys   fs.FS
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler over the given filesystem.
func NewHandler(fsys fs.FS, logger *zap.Logger) *Handler {
	return &Handler{fsys: fsys, logger: logger}
}

// RegisterRoutes registers the page routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Get("/read", h.HandleRead)
	app.Get("/*", h.HandleAsset)
}

// HandleIndex serves the submission page.
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	return h.sendPage(c, IndexPage)
}

// HandleRead serves the reading page.
func (h *Handler) HandleRead(c *fiber.Ctx) error {
	return h.sendPage(c, ReadPage)
}

// HandleAsset serves any other file of the public directory.
// Unknown paths fall through to the next route.
func (h *Handler) HandleAsset(c *fiber.Ctx) error {
	name := strings.TrimPrefix(path.Clean("/"+c.Params("*")), "/")
	if name == "" || !fs.ValidPath(name) {
		return c.Next()
	}

	data, err := fs.ReadFile(h.fsys, name)
	if err != nil {
		return c.Next()
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	c.Type(strings.TrimPrefix(path.Ext(name), "."))
	return c.Send(data)
}

func (h *Handler) sendPage(c *fiber.Ctx, name string) error {
	data, err := fs.ReadFile(h.fsys, name)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to read page", zap.String("page", name), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "page unavailable")
	}

	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Type("html", "utf-8")
	return c.Send(data)
}
