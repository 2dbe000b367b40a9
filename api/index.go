package handler

import (
	"net/http"
	"sync"

	"pgms/config"
	"pgms/di"
	"pgms/shared/logger"
)

var (
	service *di.Service
	once    sync.Once
)

// Handler is the serverless entrypoint. The service is built on the first
// invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger(config.Get())

		service = di.InitializeService()
	})

	service.HTTP.ServeHTTP(w, r)
}
