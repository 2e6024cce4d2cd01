// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cedhub/cedhub/internal/app/system/imagestore"
	"github.com/cedhub/cedhub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// imageCleanup runs for the life of the process; Shutdown stops it.
var imageCleanup *workers.ImageCleanup

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. CED Hub
// makes sure the public images directory exists, warns when the shared
// default profile picture is missing, and starts the orphan-image sweeper.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	images, err := imagestore.New(appCfg.ImagesPath, appCfg.ImagesURL, appCfg.DefaultProfilePicture)
	if err != nil {
		return err
	}

	defaultPath := filepath.Join(appCfg.ImagesPath, appCfg.DefaultProfilePicture)
	if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
		logger.Warn("default profile picture not found",
			zap.String("path", defaultPath))
	}

	imageCleanup = workers.NewImageCleanup(deps.MongoDatabase, images, logger, time.Hour)
	imageCleanup.Start()

	return nil
}
