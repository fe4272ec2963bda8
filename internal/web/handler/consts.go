package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// FragmentPath serves the bare navbar fragment.
	FragmentPath = RootPath + "_navbar"

	// MetricsPath serves the prometheus metrics.
	MetricsPath = RootPath + "metrics"

	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = RootPath + "checkalive"

	// ErrNilFatalLogMsg is used if app, cfg or nav is nil.
	ErrNilFatalLogMsg = "app, cfg or nav is nil"
)
