package groq

import (
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3/option"
)

const (
	DefaultURL   = "https://api.groq.com/openai/v1/"
	DefaultModel = "gpt-4o-mini-tts"
)

type Config struct {
	url string

	token string
	model string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func (c *Config) Options() []option.RequestOption {
	if c.url == "" {
		c.url = DefaultURL
	}

	if c.model == "" {
		c.model = DefaultModel
	}

	if c.client == nil {
		c.client = http.DefaultClient
	}

	c.url = strings.TrimRight(c.url, "/") + "/"

	options := []option.RequestOption{
		option.WithBaseURL(c.url),
		option.WithHTTPClient(c.client),

		// failures are reported to the caller as they are
		option.WithMaxRetries(0),

		option.WithMiddleware(captureError),
	}

	if c.token != "" {
		options = append(options, option.WithAPIKey(c.token))
	}

	return options
}
