package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TasksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskdesk_tasks_created_total",
		Help: "Tasks created successfully.",
	})

	SolutionsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskdesk_solutions_submitted_total",
		Help: "Solutions submitted successfully.",
	})

	ReviewsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskdesk_reviews_created_total",
		Help: "Reviews created successfully.",
	})

	TasksExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "taskdesk_tasks_expired_total",
		Help: "Tasks lazily moved to expired on submission.",
	})

	UseCaseFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "taskdesk_use_case_failures_total",
		Help: "Use case failures by error kind.",
	}, []string{"use_case", "kind"})
)

// Handler serves the default prometheus registry.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
