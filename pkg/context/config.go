package context

type RouterType string

const (
	Welcome     RouterType = "Welcome"
	HeadersEcho RouterType = "HeadersEcho"
)

type FilterType string

const (
	LogFilter       FilterType = "LogFilter"
	RequestIdFilter FilterType = "RequestIdFilter"
	MetricsFilter   FilterType = "MetricsFilter"
)

type Filter struct {
	Type       FilterType `validate:"required"`
	Name       string     `validate:"required"`
	Template   string
	HeaderName string `mapstructure:"header-name"`
}

type Router struct {
	Type    RouterType `validate:"required"`
	Pattern string     `validate:"required,startswith=/"`
	Method  string
	Message string
	Filters []Filter `validate:"dive"`
}

type LogLevel string

const (
	Debug LogLevel = "debug"
	Trace LogLevel = "trace"
	Info  LogLevel = "info"
)

type ServiceConfiguration struct {
	Port        int      `yaml:"port"`
	MetricsPort int      `mapstructure:"metrics-port" yaml:"metrics-port"`
	LogLevel    LogLevel `mapstructure:"log-level" yaml:"log-level"`
	Routers     []Router `yaml:"routers"`
}

// DefaultRouters binds the two public routes with request id, metrics and
// access log filters in front of them.
func DefaultRouters() []Router {
	return []Router{
		{
			Type:    Welcome,
			Pattern: "/",
			Filters: defaultFilters("welcome"),
		},
		{
			Type:    HeadersEcho,
			Pattern: "/headers",
			Filters: defaultFilters("headers"),
		},
	}
}

func defaultFilters(routerName string) []Filter {
	return []Filter{
		{Type: RequestIdFilter, Name: "request id for: " + routerName},
		{Type: MetricsFilter, Name: routerName},
		{
			Type:     LogFilter,
			Name:     "log filter for: " + routerName,
			Template: "METHOD:{{.Request.Method}} PATH:{{.Request.URL}} REMOTE:{{.Request.RemoteAddr}}",
		},
	}
}
