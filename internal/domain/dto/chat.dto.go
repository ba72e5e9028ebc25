package dto

import (
	"encoding/json"

	"training-chatbot/internal/domain/entities"
)

// InterviewerChatRequest is the body of POST /chat in interviewer mode.
// Pointer fields distinguish an absent option (defaulted) from a present one.
// A present null counts as present and empty.
type InterviewerChatRequest struct {
	UserID     string  `json:"userId"`
	AgentLevel *string `json:"agentLevel,omitempty"`
	Tone       *string `json:"tone,omitempty"`
	Language   *string `json:"language,omitempty"`
}

func (r *InterviewerChatRequest) UnmarshalJSON(data []byte) error {
	type plain InterviewerChatRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	for key, field := range map[string]**string{
		"agentLevel": &r.AgentLevel,
		"tone":       &r.Tone,
		"language":   &r.Language,
	} {
		if raw, ok := keys[key]; ok && *field == nil && string(raw) == "null" {
			*field = new(string)
		}
	}
	return nil
}

// PersonaConfig applies defaults to absent fields and parses the rest.
func (r InterviewerChatRequest) PersonaConfig() entities.PersonaConfig {
	level, tone, language := entities.DefaultAgentLevel, entities.DefaultTone, entities.DefaultLanguage
	if r.AgentLevel != nil {
		level = *r.AgentLevel
	}
	if r.Tone != nil {
		tone = *r.Tone
	}
	if r.Language != nil {
		language = *r.Language
	}
	return entities.PersonaConfig{
		AgentLevel: entities.ParseAgentLevel(level),
		Tone:       entities.ParseTone(tone),
		Language:   language,
	}
}

type InterviewerChatResponse struct {
	Question    string          `json:"question"`
	ChatHistory []entities.Turn `json:"chatHistory"`
}

// MessageChatRequest is the body of POST /chat in message mode.
type MessageChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type MessageChatResponse struct {
	Reply       string          `json:"reply"`
	ChatHistory []entities.Turn `json:"chatHistory"`
}

type HistoryResponse struct {
	Messages []entities.Turn `json:"messages"`
}

type CompanyInfoRequest struct {
	Details string `json:"details"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
