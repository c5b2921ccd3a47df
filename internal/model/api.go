package model

// ProcessImageRequest is the body of POST /process-image. Field names are the public contract.
type ProcessImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`

	Prompt string `json:"prompt" validate:"required"`

	GeminiAPIEndpoint string `json:"geminiApiEndpoint"` // optional, defaults to the public Gemini endpoint

	GeminiAPIKey string `json:"geminiApiKey" validate:"required"`

	GeminiModel string `json:"geminiModel"` // optional
}

type ProcessImageResponse struct {
	Success bool `json:"success"`

	ImageBase64 string `json:"image_base64,omitempty"`

	Error string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`

	Service string `json:"service"`
}
