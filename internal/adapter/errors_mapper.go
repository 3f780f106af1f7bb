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

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrUpstreamUnavailable, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}
