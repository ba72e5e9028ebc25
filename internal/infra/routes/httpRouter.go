package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"training-chatbot/internal/config"
	"training-chatbot/internal/infra/handlers"
	"training-chatbot/internal/infra/metrics"
)

type Routes struct {
	Mux         *mux.Router
	HttpHandler *handlers.HttpHandlers
	Metrics     *metrics.Metrics
	ChatMode    string
}

func NewRoutes(mux *mux.Router, httpHandler *handlers.HttpHandlers, m *metrics.Metrics, chatMode string) *Routes {
	return &Routes{Mux: mux, HttpHandler: httpHandler, Metrics: m, ChatMode: chatMode}
}

// Init registers the API. POST /chat is bound to one of the two chat
// handlers depending on the configured chat mode.
func (r *Routes) Init() {
	chat := r.HttpHandler.InterviewerChat
	if r.ChatMode == config.ChatModeMessage {
		chat = r.HttpHandler.MessageChat
	}

	r.Mux.HandleFunc("/chat", chat).Methods(http.MethodPost)
	r.Mux.HandleFunc("/chat/{userId}", r.HttpHandler.ChatHistory).Methods(http.MethodGet)
	r.Mux.HandleFunc("/company-info", r.HttpHandler.CompanyInfo).Methods(http.MethodPost)

	r.Mux.HandleFunc("/healthCheck", r.HttpHandler.HealthCheck).Methods(http.MethodGet)
	r.Mux.Handle("/metrics", r.Metrics.Handler()).Methods(http.MethodGet)
}
