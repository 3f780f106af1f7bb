package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request of an HTTPClient.
const UserAgent = "go-starwars-catalog"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://swapi.dev/api/people/")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient that identifies itself with UserAgent
// and asks for JSON responses. Each call returns an independent client.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
