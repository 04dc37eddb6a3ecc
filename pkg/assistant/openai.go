package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultAPIURL = "https://api.openai.com/v1/chat/completions"
	defaultModel  = "gpt-5"
)

// OpenAIClient implements Client against the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey  string
	apiURL  string
	model   string
	client  *http.Client
	timeout time.Duration
}

// Config configures the OpenAI-backed client.
type Config struct {
	APIKey  string
	APIUrl  string
	Model   string
	Timeout time.Duration
}

// NewOpenAI creates an OpenAI-backed assistant client.
func NewOpenAI(config Config) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config.APIUrl == "" {
		config.APIUrl = defaultAPIURL
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &OpenAIClient{
		apiKey:  config.APIKey,
		apiURL:  config.APIUrl,
		model:   config.Model,
		timeout: config.Timeout,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model               string          `json:"model"`
	Messages            []chatMessage   `json:"messages"`
	ResponseFormat      *responseFormat `json:"response_format,omitempty"`
	MaxCompletionTokens int             `json:"max_completion_tokens,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzePlantImage sends the image and a pathology prompt to the model
// and parses its JSON reply. The raw reply is sanitized before return so
// a sloppy model answer cannot leak bad values into storage.
func (c *OpenAIClient) AnalyzePlantImage(ctx context.Context, base64Image, cropType string) (*DiagnosisResult, error) {
	hint := "Identify the plant type first."
	if cropType != "" {
		hint = fmt.Sprintf("The farmer believes this is a %s plant.", cropType)
	}

	prompt := fmt.Sprintf(`You are an expert agricultural pathologist and plant health specialist. Analyze this plant image and provide a comprehensive diagnosis.

%s

Please respond with JSON in this exact format:
{
  "crop_type": "identified plant type",
  "condition": "healthy/warning/critical",
  "diagnosis": "detailed diagnosis of plant health",
  "confidence": 85,
  "symptoms": ["symptom 1", "symptom 2"],
  "recommendations": ["immediate action 1", "immediate action 2", "follow-up action"],
  "treatment_steps": ["step 1", "step 2", "step 3"],
  "next_check_date": "YYYY-MM-DD"
}

Analysis guidelines:
- Be specific about diseases, pests, or nutrient deficiencies
- Confidence should be 0-100 based on image clarity and symptom visibility
- Recommendations should be practical for small-scale farmers
- Include organic/low-cost solutions when possible
- Set next_check_date 5-14 days from now based on severity
- For healthy plants, focus on maintenance advice`, hint)

	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &imageURL{
						URL: "data:image/jpeg;base64," + base64Image,
					}},
				},
			},
		},
		ResponseFormat:      &responseFormat{Type: "json_object"},
		MaxCompletionTokens: 1000,
	}

	content, err := c.complete(ctx, request)
	if err != nil {
		return nil, err
	}

	var result DiagnosisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse diagnosis response: %w", err)
	}

	return sanitize(&result), nil
}

// GenerateFarmingAdvice answers a farming question as free text.
func (c *OpenAIClient) GenerateFarmingAdvice(ctx context.Context, question, contextInfo string) (string, error) {
	extra := ""
	if contextInfo != "" {
		extra = "Context: " + contextInfo + "\n\n"
	}

	prompt := fmt.Sprintf(`You are an AI farming assistant specializing in small-scale agriculture for developing regions. Answer the farmer's question with practical, actionable advice.

%sQuestion: %s

Guidelines for your response:
- Keep answers concise but comprehensive (2-4 sentences)
- Focus on low-cost, locally available solutions
- Consider climate and resource constraints
- Include specific measurements, timing, or quantities when relevant
- Prioritize organic and sustainable methods
- If the question is about plant diseases, be specific about symptoms and treatments`, extra, question)

	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are AgriMind, an AI assistant helping small-scale farmers increase their crop yields through practical agricultural guidance. Always provide specific, actionable advice.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxCompletionTokens: 300,
	}

	content, err := c.complete(ctx, request)
	if err != nil {
		return "", err
	}
	if content == "" {
		content = "I'm sorry, I couldn't generate advice for your question. Please try rephrasing it."
	}
	return content, nil
}

func (c *OpenAIClient) complete(ctx context.Context, request chatRequest) (string, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	return parsed.Choices[0].Message.Content, nil
}
