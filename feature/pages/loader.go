package pages

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	dir     string
	logger  *zap.Logger
	handler *Handler
}

// NewFeature creates the pages feature. An empty dir serves the embedded pages.
func NewFeature(dir string, logger *zap.Logger) *Feature {
	return &Feature{dir: dir, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "pages"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load opens the public directory and registers the page routes.
func (f *Feature) Load(app fiber.Router) error {
	fsys, err := OpenFS(f.dir)
	if err != nil {
		return err
	}
	if f.dir != "" {
		f.logger.Info("Serving pages from disk", zap.String("dir", f.dir))
	}

	f.handler = NewHandler(fsys, f.logger)
	f.handler.RegisterRoutes(app)
	return nil
}
