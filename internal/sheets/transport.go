package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// transport issues one request against the web app endpoint and returns
// the raw JSON payload. Implementations are tried in order; the first
// success wins.
type transport interface {
	name() string
	do(ctx context.Context, baseURL string, params url.Values) (json.RawMessage, error)
}

// callbackTransport is the script-injection style request: the endpoint
// is asked to wrap its reply in a uniquely named callback, and the
// caller waits on the pending-request registry with a bounded timeout.
type callbackTransport struct {
	client  *http.Client
	timeout time.Duration
}

func (t *callbackTransport) name() string { return "callback" }

func (t *callbackTransport) do(ctx context.Context, baseURL string, params url.Values) (json.RawMessage, error) {
	cbName := fmt.Sprintf("jsonp_callback_%d_%s", time.Now().UnixMilli(), suffix())

	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	query.Set("callback", cbName)

	ch, release := callbacks.acquire(cbName)
	defer release()

	errc := make(chan error, 1)
	go func() {
		payload, err := t.load(ctx, baseURL+"?"+query.Encode(), cbName)
		if err != nil {
			errc <- err
			return
		}
		callbacks.deliver(cbName, payload)
	}()

	select {
	case payload := <-ch:
		return payload, nil
	case err := <-errc:
		return nil, err
	case <-time.After(t.timeout):
		return nil, fmt.Errorf("callback request timed out after %s", t.timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// load fetches the script body and unwraps "<cbName>(<json>);".
func (t *callbackTransport) load(ctx context.Context, rawURL, cbName string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("script load: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("script load failed with status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read script body: %w", err)
	}

	text := strings.TrimSpace(string(body))
	if !strings.HasPrefix(text, cbName+"(") {
		return nil, fmt.Errorf("response is not a %s callback payload", cbName)
	}
	text = strings.TrimPrefix(text, cbName+"(")
	text = strings.TrimSuffix(strings.TrimSuffix(text, ";"), ")")
	payload := json.RawMessage(text)
	if !json.Valid(payload) {
		return nil, fmt.Errorf("callback payload is not valid JSON")
	}
	return payload, nil
}

// fetchTransport is the plain GET fallback used when the callback
// transport fails or times out.
type fetchTransport struct {
	client *http.Client
}

func (t *fetchTransport) name() string { return "fetch" }

func (t *fetchTransport) do(ctx context.Context, baseURL string, params url.Values) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed: %d - %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	payload := json.RawMessage(body)
	if !json.Valid(payload) {
		return nil, fmt.Errorf("response is not valid JSON")
	}
	return payload, nil
}

func suffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:5]
}
