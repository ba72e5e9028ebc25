package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"training-chatbot/internal/domain/dto"
	"training-chatbot/internal/infra/logger"
)

// QueryAIProvider posts the prompt context to a self-hosted gateway at
// <host>/query and reads the completion from the "response" field.
type QueryAIProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	host       string
}

func NewQueryAIProvider(logger *logger.Logger, httpClient *http.Client, host string) *QueryAIProvider {
	return &QueryAIProvider{
		Logger:     logger,
		HttpClient: httpClient,
		host:       strings.TrimRight(host, "/"),
	}
}

func (p *QueryAIProvider) Name() string { return "queryai" }

func (p *QueryAIProvider) Complete(ctx context.Context, messages []dto.PromptMessage, opts dto.GenerationOptions) (string, error) {
	payload := dto.QueryAIRequest{
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Failed to marshal payload: %s", err.Error()))
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+"/query", bytes.NewReader(payloadBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.HttpClient.Do(req)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Failed to send POST request: %s", err.Error()))
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		p.Logger.Error(fmt.Sprintf("Failed to read response body: %s", err.Error()))
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.Logger.Error(fmt.Sprintf("Query AI returned status %d: %s", resp.StatusCode, string(body)))
		return "", fmt.Errorf("query ai: unexpected status %d", resp.StatusCode)
	}

	var queryResponse dto.QueryAIResponse
	if err := json.Unmarshal(body, &queryResponse); err != nil {
		p.Logger.Error(fmt.Sprintf("Failed to unmarshal response body: %s", err.Error()))
		return "", fmt.Errorf("failed to unmarshal response body: %w", err)
	}

	return strings.TrimSpace(queryResponse.Response), nil
}
