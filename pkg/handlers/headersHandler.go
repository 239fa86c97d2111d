package handlers

import (
	"github.com/Alcereo/headers-api/pkg/common"
	"github.com/sirupsen/logrus"
	"net/http"
	"sort"
	"strings"
)

type HeadersEchoHandler struct{}

func NewHeadersEchoHandler() *HeadersEchoHandler {
	return &HeadersEchoHandler{}
}

func (handler *HeadersEchoHandler) Handle(log *logrus.Entry, writer http.ResponseWriter, request *http.Request) {
	headers := CollectHeaders(request)
	log.Tracef("Echoing %v request headers", len(headers))
	writeJson(log, writer, 200, common.HeadersPayload{Headers: headers})
}

// CollectHeaders flattens the request headers into a map keyed by lower-cased
// name. Repeated values are joined with ", " in arrival order. Names that only
// differ in case (possible in a hand-built Header) merge in sorted name order.
// The server moves Host out of the header map, so it is put back from
// request.Host.
func CollectHeaders(request *http.Request) map[string]string {
	names := make([]string, 0, len(request.Header))
	for name := range request.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make(map[string]string, len(names)+1)
	for _, name := range names {
		values := request.Header[name]
		key := strings.ToLower(name)
		if existing, found := headers[key]; found {
			values = append([]string{existing}, values...)
		}
		headers[key] = strings.Join(values, ", ")
	}
	if request.Host != "" {
		if _, found := headers["host"]; !found {
			headers["host"] = request.Host
		}
	}
	return headers
}
