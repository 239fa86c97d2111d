package context

import (
	"fmt"
	"github.com/Alcereo/headers-api/pkg/common"
	"github.com/Alcereo/headers-api/pkg/filters"
	"github.com/Alcereo/headers-api/pkg/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gopkg.in/go-playground/validator.v9"
	"net/http"
	"strings"
	"time"
)

var validate = validator.New()

type context struct {
	router          *chi.Mux
	metricsRegistry *prometheus.Registry
}

func NewContext() *context {
	registry := prometheus.NewRegistry()
	registry.MustRegister(filters.MetricsCollectors()...)
	return &context{
		router:          chi.NewRouter(),
		metricsRegistry: registry,
	}
}

func (ctx *context) SetupRouters(routers []Router) {
	for _, router := range routers {
		if err := validate.Struct(router); err != nil {
			panic(fmt.Errorf("Invalid router '%v' configuration: %v.\n", router.Pattern, err))
		}

		var handler common.RequestHandler
		switch router.Type {
		case Welcome:
			log.Debugf("Adding welcome router. Pattern: %s", router.Pattern)
			handler = handlers.NewWelcomeHandler(router.Message)
		case HeadersEcho:
			log.Debugf("Adding headers echo router. Pattern: %s", router.Pattern)
			handler = handlers.NewHeadersEchoHandler()
		default:
			panic(fmt.Errorf("Undefined router type: %v.\n", router.Type))
		}

		method := strings.ToUpper(router.Method)
		if method == "" {
			method = http.MethodGet
		}
		rootHandler := ctx.BuildFilterHandlers(router.Filters, handler)
		ctx.router.Method(method, router.Pattern, entryHandler(router, rootHandler))
	}
}

// entryHandler starts the per-request log entry and hands it to the chain.
func entryHandler(router Router, rootHandler common.RequestHandler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		entry := log.WithFields(log.Fields{
			"router": router.Pattern,
			"method": request.Method,
		})
		rootHandler.Handle(entry, writer, request)
	})
}

func (ctx *context) BuildFilterHandlers(filters []Filter, mainHandler common.RequestHandler) (rootHandler common.RequestHandler) {
	if filters == nil {
		return mainHandler
	}

	currentHandler := mainHandler

	for i := len(filters) - 1; i >= 0; i-- {
		filter := filters[i]

		handler := ctx.BuildFilterHandler(filter)

		if handler == nil {
			continue
		}

		handler.SetNext(currentHandler)
		currentHandler = handler
	}

	return currentHandler
}

func (ctx *context) BuildFilterHandler(filter Filter) common.RequestChainedHandler {
	switch filter.Type {
	case LogFilter:
		log.Debugf("Adding Log filter. Name: %s", filter.Name)
		// Returning the typed nil directly would hide it behind a non-nil interface.
		logFilter := filters.CreateLogFilter(filter.Name, filter.Template)
		if logFilter == nil {
			return nil
		}
		return logFilter
	case RequestIdFilter:
		log.Debugf("Adding request id filter. Name: %s", filter.Name)
		return filters.NewRequestIdFilter(filter.Name, filter.HeaderName)
	case MetricsFilter:
		log.Debugf("Adding metrics filter. Name: %s", filter.Name)
		return filters.NewMetricsFilter(filter.Name)
	default:
		panic(fmt.Errorf("Undefined filter type: %v.\n", filter.Type))
	}
}

func (ctx *context) Handler() http.Handler {
	return ctx.router
}

func (ctx *context) BuildServer(port int) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%v", port),
		Handler:           ctx.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func (ctx *context) BuildMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(ctx.metricsRegistry, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:              fmt.Sprintf(":%v", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
