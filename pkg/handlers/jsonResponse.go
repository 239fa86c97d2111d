package handlers

import (
	"encoding/json"
	"github.com/sirupsen/logrus"
	"net/http"
)

func writeJson(log *logrus.Entry, writer http.ResponseWriter, status int, payload interface{}) {
	const stage = "Writing json response error. Reason: %v"

	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Errorf(stage, err)
		writer.WriteHeader(500)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if _, err := writer.Write(bytes); err != nil {
		log.Debugf(stage, err)
	}
}
