package handlers

import (
	"github.com/Alcereo/headers-api/pkg/common"
	"github.com/sirupsen/logrus"
	"net/http"
)

type WelcomeHandler struct {
	Message string
}

func NewWelcomeHandler(message string) *WelcomeHandler {
	if message == "" {
		message = common.DefaultWelcomeMessage
	}
	return &WelcomeHandler{Message: message}
}

func (handler *WelcomeHandler) Handle(log *logrus.Entry, writer http.ResponseWriter, request *http.Request) {
	writeJson(log, writer, 200, common.WelcomePayload{Message: handler.Message})
}
