package filters

import (
	"github.com/Alcereo/headers-api/pkg/common"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"net/http"
)

const DefaultRequestIdHeader = "X-Request-Id"

// RequestIdFilter tags every request with a fresh identifier. The identifier
// goes to the response header and the log entry, never to the request headers.
type RequestIdFilter struct {
	next       *common.RequestHandler
	Name       string
	HeaderName string
}

func NewRequestIdFilter(name string, headerName string) *RequestIdFilter {
	if headerName == "" {
		headerName = DefaultRequestIdHeader
	}
	return &RequestIdFilter{
		Name:       name,
		HeaderName: headerName,
	}
}

func (filter *RequestIdFilter) SetNext(nextHandler common.RequestHandler) {
	filter.next = &nextHandler
}

func (filter *RequestIdFilter) Handle(log *logrus.Entry, writer http.ResponseWriter, request *http.Request) {
	id := common.RequestId(uuid.NewV4().String())
	log = log.WithField("requestId", id)

	writer.Header().Set(filter.HeaderName, string(id))
	newRequest := request.WithContext(common.WithRequestId(request.Context(), id))

	if filter.next != nil {
		(*filter.next).Handle(log, writer, newRequest)
	} else {
		log.Debugf("Request id filter: %v doesn't have next handler", filter.Name)
	}
}
