package pkg

import (
	"net/http"
	"time"
)

// The panel API never hangs a caller longer than the configured timeout;
// a stalled catalog or order request surfaces as a retryable error instead
// of a stuck loading state.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout == 0 {
		timeout = time.Second * 10
	}
	return &http.Client{
		Timeout: timeout,
	}
}
