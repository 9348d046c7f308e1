package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// InitNewRelic returns nil when New Relic is disabled or misconfigured;
// every helper in this package accepts a nil application or transaction.
// serviceName is used when NEW_RELIC_APP_NAME is unset.
func InitNewRelic(configs *models.Config, serviceName string) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	appName := configs.NewRelic.AppName
	if appName == "" {
		appName = "roadbuddy-" + serviceName
	}

	logger.Info("Initializing New Relic",
		logger.String("app_name", appName),
		logger.Bool("forward_logs", configs.NewRelic.ForwardLogs))

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
		newrelic.ConfigCustomInsightsEventsEnabled(true),
		func(cfg *newrelic.Config) {
			cfg.Labels = map[string]string{
				"environment": configs.App.Environment,
				"service":     serviceName,
			}
		},
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it", logger.Err(err))
		return nil
	}

	return nrApp
}
