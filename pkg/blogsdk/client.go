package blogsdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client talks to the microblog API. Sessions are cookies, so a Client keeps
// a cookie jar and each Client is logged in as at most one user.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a Client with its own cookie jar.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil) // never fails without options
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// WithHTTPClient returns a Client using hc, e.g. an httptest server's client.
// A jar is added to hc if it has none.
func WithHTTPClient(baseURL string, hc *http.Client) *Client {
	if hc.Jar == nil {
		hc.Jar, _ = cookiejar.New(nil)
	}
	return &Client{BaseURL: strings.TrimSuffix(baseURL, "/"), HTTPClient: hc}
}
