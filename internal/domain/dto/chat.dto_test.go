package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-chatbot/internal/domain/entities"
)

func TestInterviewerChatRequest_PersonaConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
		want entities.PersonaConfig
	}{
		{
			name: "absent fields use defaults",
			body: `{"userId":"u1"}`,
			want: entities.PersonaConfig{AgentLevel: entities.AgentLevelBeginner, Tone: entities.ToneFriendly, Language: "en"},
		},
		{
			name: "explicit values",
			body: `{"userId":"u1","agentLevel":"Advanced","tone":"Casual","language":"French"}`,
			want: entities.PersonaConfig{AgentLevel: entities.AgentLevelAdvanced, Tone: entities.ToneCasual, Language: "French"},
		},
		{
			name: "empty strings are unrecognized, not defaulted",
			body: `{"userId":"u1","agentLevel":"","tone":""}`,
			want: entities.PersonaConfig{AgentLevel: entities.AgentLevelUnrecognized, Tone: entities.ToneUnrecognized, Language: "en"},
		},
		{
			name: "explicit nulls are unrecognized, not defaulted",
			body: `{"userId":"u1","agentLevel":null,"tone":null}`,
			want: entities.PersonaConfig{AgentLevel: entities.AgentLevelUnrecognized, Tone: entities.ToneUnrecognized, Language: "en"},
		},
		{
			name: "null language is kept empty",
			body: `{"userId":"u1","tone":"Professional","language":null}`,
			want: entities.PersonaConfig{AgentLevel: entities.AgentLevelBeginner, Tone: entities.ToneProfessional, Language: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req InterviewerChatRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.PersonaConfig())
		})
	}
}

func TestInterviewerChatRequest_UnmarshalJSON(t *testing.T) {
	var req InterviewerChatRequest
	require.NoError(t, json.Unmarshal([]byte(`{"userId":"u1","agentLevel":null}`), &req))

	assert.Equal(t, "u1", req.UserID)
	require.NotNil(t, req.AgentLevel)
	assert.Empty(t, *req.AgentLevel)
	assert.Nil(t, req.Tone)
	assert.Nil(t, req.Language)

	assert.Error(t, json.Unmarshal([]byte(`{"userId":"u1","tone":3}`), &req))
	assert.NoError(t, json.Unmarshal([]byte(`null`), &InterviewerChatRequest{}))
}
