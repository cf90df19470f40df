// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	authfeature "github.com/amayorga/partnerbase/internal/app/features/auth"
	healthfeature "github.com/amayorga/partnerbase/internal/app/features/health"
	invitesfeature "github.com/amayorga/partnerbase/internal/app/features/invites"
	profilefeature "github.com/amayorga/partnerbase/internal/app/features/profile"
	"github.com/amayorga/partnerbase/internal/app/policy/codepolicy"
	"github.com/amayorga/partnerbase/internal/app/policy/credentialpolicy"
	"github.com/amayorga/partnerbase/internal/app/policy/patchpolicy"
	accountstore "github.com/amayorga/partnerbase/internal/app/store/accounts"
	"github.com/amayorga/partnerbase/internal/app/system/filestore"
	"github.com/amayorga/partnerbase/internal/app/system/mailer"
	"github.com/amayorga/partnerbase/internal/app/system/ratelimit"
	"github.com/amayorga/partnerbase/internal/app/system/session"
	"github.com/amayorga/partnerbase/internal/app/system/tokens"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The account API lives under /api/user: registration, verification,
// login, and recovery are public; profile, company, logo, deletion, and
// the invitation endpoints sit behind the session middleware.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	store := accountstore.New(deps.MongoDatabase)
	tokenMgr := tokens.NewManager(appCfg.JWTSecret, appCfg.JWTExpiry)
	codes := codepolicy.New(appCfg.CodeExpiry)
	creds := credentialpolicy.New(appCfg.MaxLoginAttempts, appCfg.LockoutWindow)
	patch := patchpolicy.New()

	mail := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		Username: appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		FromName: appCfg.MailFromName,
	}, logger)

	files, err := filestore.NewLocal(appCfg.StorageLocalPath, appCfg.BaseURL+appCfg.StorageLocalURL)
	if err != nil {
		logger.Error("file store init failed", zap.Error(err))
		return nil, err
	}

	sess := &session.Middleware{Tokens: tokenMgr, Accounts: store, Log: logger}

	authHandler := authfeature.NewHandler(store, tokenMgr, codes, creds, mail, appCfg.SiteName, logger)
	profileHandler := profilefeature.NewHandler(store, patch, files, logger)
	invitesHandler := invitesfeature.NewHandler(store, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Uploaded logos served from local storage
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Throttle the unauthenticated endpoints by client IP; per-account
	// lockout still applies on top of this.
	publicLimiter := ratelimit.New(30, time.Minute)

	r.Route("/api/user", func(api chi.Router) {
		api.Group(func(pub chi.Router) {
			pub.Use(publicLimiter.Middleware(logger))
			authfeature.Routes(pub, authHandler)
		})

		api.Group(func(priv chi.Router) {
			priv.Use(sess.Require)
			profilefeature.Routes(priv, profileHandler)
			priv.Mount("/invite", invitesfeature.Routes(invitesHandler))
		})
	})

	return r, nil
}
