package naver_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"weddy/internal/config"
	"weddy/pkg/naver"
)

var Module = fx.Provide(provideNaverClient)

// Local and blog search share one client so they share its rate limit.
func provideNaverClient(cfg *config.Config) naver.Client {
	if cfg.Naver.ClientID == "" || cfg.Naver.ClientSecret == "" {
		zap.L().Warn("naver credentials are not configured, searches will fail")
	}
	return naver.NewClient(cfg.Naver.ClientID, cfg.Naver.ClientSecret,
		naver.WithBaseURL(cfg.Naver.BaseURL),
		naver.WithTimeout(time.Duration(cfg.Naver.TimeoutSecs)*time.Second),
		naver.WithRateLimit(cfg.Naver.RPS),
	)
}
