package dto

// PromptRole is the role of a message sent to the generative backend.
type PromptRole string

const (
	PromptRoleSystem PromptRole = "system"
	PromptRoleUser   PromptRole = "user"
)

// PromptMessage is one entry of the context sent to the generative backend.
type PromptMessage struct {
	Role    PromptRole `json:"role"`
	Content string     `json:"content"`
}

// GenerationOptions are the sampling parameters of a backend call.
type GenerationOptions struct {
	MaxTokens   int64   `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}
