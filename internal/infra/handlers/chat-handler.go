package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"training-chatbot/internal/domain/apperrors"
	"training-chatbot/internal/domain/dto"
	Iservices "training-chatbot/internal/domain/interfaces/services"
	"training-chatbot/internal/infra/logger"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgInternal        = "Something went wrong"
	msgConflict        = "Chat history changed concurrently, please retry"
	msgCompanyInfoSent = "Company information updated successfully"
)

type HttpHandlers struct {
	Logger              *logger.Logger
	ConversationService Iservices.IConversationService
}

func NewHttpHandlers(logger *logger.Logger, conversationService Iservices.IConversationService) *HttpHandlers {
	return &HttpHandlers{Logger: logger, ConversationService: conversationService}
}

// InterviewerChat serves POST /chat when the bot plays a simulated customer.
// The body carries the user id and optional persona options; the response is
// the generated question and the updated transcript.
func (th *HttpHandlers) InterviewerChat(w http.ResponseWriter, r *http.Request) {
	var body dto.InterviewerChatRequest
	if !th.decode(w, r, &body) {
		return
	}

	question, transcript, err := th.ConversationService.HandleInterviewerTurn(r.Context(), body.UserID, body.PersonaConfig())
	if err != nil {
		th.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.InterviewerChatResponse{
		Question:    question,
		ChatHistory: transcript.Messages(),
	})
}

// MessageChat serves POST /chat when the bot replies to the user's message.
func (th *HttpHandlers) MessageChat(w http.ResponseWriter, r *http.Request) {
	var body dto.MessageChatRequest
	if !th.decode(w, r, &body) {
		return
	}

	transcript, err := th.ConversationService.HandleUserMessage(r.Context(), body.UserID, body.Message)
	if err != nil {
		th.writeServiceError(w, r, err)
		return
	}

	messages := transcript.Messages()
	writeJSON(w, http.StatusOK, dto.MessageChatResponse{
		Reply:       messages[len(messages)-1].Content,
		ChatHistory: messages,
	})
}

func (th *HttpHandlers) CompanyInfo(w http.ResponseWriter, r *http.Request) {
	var body dto.CompanyInfoRequest
	if !th.decode(w, r, &body) {
		return
	}

	if err := th.ConversationService.UpdateCompanyProfile(r.Context(), body.Details); err != nil {
		th.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: msgCompanyInfoSent})
}

// ChatHistory serves GET /chat/{userId}. Unknown users get an empty list.
func (th *HttpHandlers) ChatHistory(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	transcript, err := th.ConversationService.GetHistory(r.Context(), userID)
	if err != nil {
		th.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryResponse{Messages: transcript.Messages()})
}

func (th *HttpHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// decode reads a JSON body into dst. An empty body decodes as {} so that
// missing fields are reported by validation rather than as malformed JSON.
func (th *HttpHandlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	logger.FromContext(r.Context(), th.Logger).Warn(fmt.Sprintf("Invalid JSON payload: %s", err.Error()), logrus.Fields{"path": r.URL.Path})
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: msgInvalidBody})
	return false
}

// writeServiceError maps the service error taxonomy onto HTTP responses.
// Only invalid-request messages reach the client; everything else is logged.
func (th *HttpHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context(), th.Logger)
	fields := logrus.Fields{"method": r.Method, "path": r.URL.Path}

	if msg, ok := apperrors.ClientMessage(err); ok {
		log.Warn(msg, fields)
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return
	}

	if errors.Is(err, apperrors.ErrConflict) {
		log.Warn(err.Error(), fields)
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: msgConflict})
		return
	}

	log.Error(fmt.Sprintf("Request failed: %v", err), fields)
	writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
