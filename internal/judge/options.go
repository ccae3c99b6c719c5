package judge

// clientConfig holds transport configuration for the judge client.
type clientConfig struct {
	baseURL string
	apiKey  string
}

// Option is a functional option for configuring the judge transport.
type Option func(*clientConfig)

// WithBaseURL sets the base URL for the judge API. An empty value keeps
// the SDK default (the public OpenAI endpoint).
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithAPIKey sets the judge API key.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}
