package config

import "os"

// GeneratorConfig configures the external question-generation service.
// When the API key is missing the generator falls back to its built-in
// deterministic question list.
type GeneratorConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	Model     string `json:"model"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultGeneratorConfig returns the default generator configuration
func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		APIKey:    os.Getenv("GEMINI_API_KEY"),
		BaseURL:   getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		Model:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		TimeoutMS: 10000,
	}
}

// IsEnabled returns true if the external API is configured
func (c *GeneratorConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Endpoint returns the full generate endpoint for the configured model
func (c *GeneratorConfig) Endpoint() string {
	return c.BaseURL + "/" + c.Model + ":generateContent"
}
