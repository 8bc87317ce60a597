package config

import "time"

const (
	APIBaseURLVar = "API_BASE_URL"

	productionAPIBaseURL  = "https://ping-pong-backend-venxdb.onrender.com"
	developmentAPIBaseURL = "http://localhost:5000"
)

type ClientConfig interface {
	GetAPIBaseURL() string
	GetRequestTimeout() time.Duration
	GetProfileFetchTimeout() time.Duration
}

type Client struct {
	o overrides
}

var _ ClientConfig = Client{}

// GetAPIBaseURL falls back to the hosted backend in production and to a
// local one everywhere else.
func (c Client) GetAPIBaseURL() string {
	def := developmentAPIBaseURL
	if c.o.get(envVar, "DEV") == "PROD" {
		def = productionAPIBaseURL
	}
	return c.o.get(APIBaseURLVar, def)
}

func (Client) GetRequestTimeout() time.Duration {
	return 15 * time.Second
}

func (Client) GetProfileFetchTimeout() time.Duration {
	return 10 * time.Second
}
