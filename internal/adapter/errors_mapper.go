package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrQuoteNotFound, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUpstream, resp.StatusCode(), body)
	}
}

// providerNoticeKeys are top-level keys Alpha Vantage sends instead of data
// when a request is throttled or rejected.
var providerNoticeKeys = []string{"Note", "Information"}

// mapProviderNotice returns ErrUpstream when the decoded body is a provider
// notice rather than a quote.
func mapProviderNotice(body map[string]any) error {
	for _, key := range providerNoticeKeys {
		if msg, ok := body[key]; ok {
			return fmt.Errorf("%w: %s: %v", ErrUpstream, key, msg)
		}
	}
	return nil
}
