// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("service starting",
		zap.String("site", appCfg.SiteName),
		zap.Duration("code_expiry", appCfg.CodeExpiry),
		zap.Int("max_login_attempts", appCfg.MaxLoginAttempts),
	)
	return nil
}
