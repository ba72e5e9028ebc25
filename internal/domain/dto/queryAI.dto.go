package dto

// QueryAIRequest is the payload posted to a self-hosted query AI gateway.
type QueryAIRequest struct {
	Messages    []PromptMessage `json:"messages"`
	MaxTokens   int64           `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type QueryAIResponse struct {
	Response string `json:"response"`
}
