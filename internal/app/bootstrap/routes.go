// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	filteringfeature "github.com/cedhub/cedhub/internal/app/features/filtering"
	followsfeature "github.com/cedhub/cedhub/internal/app/features/follows"
	healthfeature "github.com/cedhub/cedhub/internal/app/features/health"
	profilepicturefeature "github.com/cedhub/cedhub/internal/app/features/profilepicture"
	usersfeature "github.com/cedhub/cedhub/internal/app/features/users"
	"github.com/cedhub/cedhub/internal/app/system/auth"
	"github.com/cedhub/cedhub/internal/app/system/imagestore"
	"github.com/cedhub/cedhub/internal/app/system/mailer"
	"github.com/cedhub/cedhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CED Hub applies the session middleware
// globally and mounts the JSON feature routers: users, followed-users,
// profile-picture upload, dashboard filtering options, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr := auth.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure)

	images, err := imagestore.New(appCfg.ImagesPath, appCfg.ImagesURL, appCfg.DefaultProfilePicture)
	if err != nil {
		logger.Error("image store init failed", zap.Error(err))
		return nil, err
	}

	mail := mailer.NewSMTPSender(mailer.SMTPConfig{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Pass:     appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	loginURL := strings.TrimRight(appCfg.BaseURL, "/") + "/login"

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Profile images are served straight off disk.
	r.Handle(appCfg.ImagesURL+"/*", fileserver.Handler(appCfg.ImagesURL, appCfg.ImagesPath))

	// Account lifecycle and role listings
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, mail, appCfg.SiteName, loginURL, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	// Followed-author relationships
	followsHandler := followsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/followed-users", followsfeature.Routes(followsHandler))

	// Profile picture upload for the signed-in user, rate limited per IP
	uploadLimiter := ratelimit.New(10, time.Minute)
	pictureHandler := profilepicturefeature.NewHandler(deps.MongoDatabase, images, logger)
	r.Mount("/profile-picture", profilepicturefeature.Routes(pictureHandler, uploadLimiter))

	// Dashboard filtering options
	filteringHandler := filteringfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/", filteringfeature.Routes(filteringHandler))

	return r, nil
}
