package twitter

import (
	"context"
	"fmt"
	"io"

	stealth "github.com/anatolykoptev/go-stealth"
)

// Transport is the HTTP capability a session needs: one request with custom
// headers, raw body and status back. Implementations own connection pooling,
// TLS, redirects, timeouts, and cancellation; a failed transport call is
// surfaced to the caller as-is.
type Transport interface {
	Do(ctx context.Context, method, url string, headers map[string]string, body io.Reader) (respBody []byte, status int, err error)
}

// stealthTransport backs Transport with a browser-grade stealth client.
type stealthTransport struct {
	bc *stealth.BrowserClient
}

// NewStealthTransport builds the default Transport. proxy may be empty.
func NewStealthTransport(proxy string) (Transport, error) {
	opts := []stealth.ClientOption{
		stealth.WithHeaderOrder(webHeaderOrder),
	}
	if proxy != "" {
		opts = append(opts, stealth.WithProxy(proxy))
	}
	bc, err := stealth.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}
	return &stealthTransport{bc: bc}, nil
}

func (t *stealthTransport) Do(ctx context.Context, method, url string, headers map[string]string, body io.Reader) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	respBody, _, status, err := t.bc.DoWithHeaderOrder(method, url, headers, body, webHeaderOrder)
	return respBody, status, err
}
