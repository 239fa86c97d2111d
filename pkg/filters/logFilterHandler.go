package filters

import (
	"bytes"
	"github.com/Alcereo/headers-api/pkg/common"
	"github.com/sirupsen/logrus"
	"net/http"
	templ "text/template"
)

type LogFilterHandler struct {
	next     *common.RequestHandler
	template *templ.Template
	Name     string
}

func (filter *LogFilterHandler) SetNext(nextHandler common.RequestHandler) {
	filter.next = &nextHandler
}

func (filter *LogFilterHandler) Handle(log *logrus.Entry, writer http.ResponseWriter, request *http.Request) {
	log = log.WithField("filterName", filter.Name)
	data := struct {
		Request *http.Request
		Filter  *LogFilterHandler
	}{
		request,
		filter,
	}
	var tpl bytes.Buffer
	err := filter.template.Execute(&tpl, data)
	if err != nil {
		log.Warnf("Log filter error: %v. Template error: %v", filter.Name, err)
	}

	log.Info(tpl.String())
	if filter.next != nil {
		(*filter.next).Handle(log, writer, request)
	} else {
		log.Debugf("Log filter error: %v. Next handler is empty", filter.Name)
	}
}

// Factory

func CreateLogFilter(name string, template string) *LogFilterHandler {
	parse, err := templ.New(name).Parse(template)
	if err != nil {
		logrus.Warnf("Log filter templ error: %v. Skip filter", err)
		return nil
	}
	return &LogFilterHandler{
		Name:     name,
		template: parse,
	}
}
