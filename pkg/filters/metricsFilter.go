package filters

import (
	"github.com/Alcereo/headers-api/pkg/common"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"net/http"
	"strconv"
	"time"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "headers_api_http_requests_total",
		Help: "Number of handled HTTP requests",
	}, []string{"filter", "method", "status"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "headers_api_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"filter", "method", "status"})
)

// MetricsCollectors lists the collectors MetricsFilter reports to.
func MetricsCollectors() []prometheus.Collector {
	return []prometheus.Collector{requestsTotal, requestDuration}
}

type MetricsFilter struct {
	next *common.RequestHandler
	Name string
}

func NewMetricsFilter(name string) *MetricsFilter {
	return &MetricsFilter{Name: name}
}

func (filter *MetricsFilter) SetNext(nextHandler common.RequestHandler) {
	filter.next = &nextHandler
}

func (filter *MetricsFilter) Handle(log *logrus.Entry, writer http.ResponseWriter, request *http.Request) {
	start := time.Now()
	ww := chimw.NewWrapResponseWriter(writer, request.ProtoMajor)

	if filter.next != nil {
		(*filter.next).Handle(log, ww, request)
	} else {
		log.Debugf("Metrics filter: %v doesn't have next handler", filter.Name)
	}

	code := ww.Status()
	if code == 0 {
		code = http.StatusOK
	}
	status := strconv.Itoa(code)
	requestsTotal.WithLabelValues(filter.Name, request.Method, status).Inc()
	requestDuration.WithLabelValues(filter.Name, request.Method, status).Observe(time.Since(start).Seconds())
}
