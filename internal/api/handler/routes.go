package handler

import (
	"net/http"

	"github.com/vfg2006/youstats/infrastructure/repository"
	"github.com/vfg2006/youstats/internal/api/handler/router"
	"github.com/vfg2006/youstats/internal/usecases/analyzing"
	"github.com/vfg2006/youstats/internal/usecases/comparing"
	"github.com/vfg2006/youstats/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Comparisons(service comparing.ComparingService, store repository.SnapshotRepository, analyzer analyzing.AnalyzingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/comparisons",
			Method:      http.MethodPost,
			Handler:     CreateComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/comparisons/common-years",
			Method:      http.MethodGet,
			Handler:     GetCommonYears(store, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Channels(store repository.SnapshotRepository, analyzer analyzing.AnalyzingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/channels/:name/snapshot",
			Method:      http.MethodGet,
			Handler:     GetChannelSnapshot(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/channels/:name/histogram",
			Method:      http.MethodGet,
			Handler:     GetChannelHistogram(store, analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/channels/:name/report",
			Method:      http.MethodGet,
			Handler:     GetChannelReport(store),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(syncer ComparisonSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/comparisons",
			Method:      http.MethodPost,
			Handler:     RunComparisonSync(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
