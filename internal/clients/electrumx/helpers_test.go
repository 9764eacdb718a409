package electrumx

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// upstream is a mock ElectrumX proxy. respond gets the 1-based index of the
// call and returns the status code and body to send back.
type upstream struct {
	*httptest.Server
	calls atomic.Int64

	mu     sync.Mutex
	paths  []string
	params [][]any
}

func newUpstream(t *testing.T, respond func(call int64, path string) (int, string)) *upstream {
	t.Helper()
	u := &upstream{}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := u.calls.Add(1)

		body, err := io.ReadAll(r.Body)
		if err == nil {
			var req struct {
				Params []any `json:"params"`
			}
			_ = json.Unmarshal(body, &req)
			u.mu.Lock()
			u.paths = append(u.paths, r.URL.Path)
			u.params = append(u.params, req.Params)
			u.mu.Unlock()
		}

		status, respBody := respond(call, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(u.Close)
	return u
}

func (u *upstream) Calls() int {
	return int(u.calls.Load())
}

func (u *upstream) LastPath() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.paths) == 0 {
		return ""
	}
	return u.paths[len(u.paths)-1]
}

func (u *upstream) LastParams() []any {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.params) == 0 {
		return nil
	}
	return u.params[len(u.params)-1]
}

// always answers every call with the same status and body.
func always(status int, body string) func(int64, string) (int, string) {
	return func(int64, string) (int, string) {
		return status, body
	}
}

// deadURL returns the URL of a server that no longer listens.
func deadURL(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}

// countingTransport counts round trips per host, including refused ones.
type countingTransport struct {
	next http.RoundTripper

	mu     sync.Mutex
	counts map[string]int
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	c.mu.Lock()
	c.counts[req.URL.Host]++
	c.mu.Unlock()
	return c.next.RoundTrip(req)
}

func (c *countingTransport) CloseIdleConnections() {
	if closer, ok := c.next.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}

func (c *countingTransport) Count(rawURL string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[strings.TrimPrefix(strings.TrimPrefix(rawURL, "http://"), "https://")]
}

func (c *countingTransport) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// syncBuffer is a log sink safe to read while the client still writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type testClient struct {
	*Client
	transport *countingTransport
	logs      *syncBuffer
}

func newTestClient(t *testing.T, uris []string, maxRetries int, retryDelay time.Duration) *testClient {
	t.Helper()
	logs := &syncBuffer{}
	client, err := NewBuilder().
		BaseURIList(uris).
		MaxRetries(maxRetries).
		RetryDelay(retryDelay).
		PollInterval(5 * time.Millisecond).
		Timeout(2 * time.Second).
		Logger(zerolog.New(logs)).
		Build()
	require.Nil(t, err)

	transport := &countingTransport{next: client.httpClient.Transport, counts: map[string]int{}}
	client.httpClient.Transport = transport
	t.Cleanup(client.CloseIdleConnections)

	return &testClient{Client: client, transport: transport, logs: logs}
}

func testAddress(t *testing.T, params *chaincfg.Params) string {
	t.Helper()
	addr, err := btcutil.NewAddressWitnessPubKeyHash(bytes.Repeat([]byte{0x01}, 20), params)
	require.NoError(t, err)
	return addr.EncodeAddress()
}

// expectedScripthash computes the scripthash of testAddress by hand.
func expectedScripthash() string {
	script := append([]byte{0x00, 0x14}, bytes.Repeat([]byte{0x01}, 20)...)
	sum := sha256.Sum256(script)
	for i, j := 0, len(sum)-1; i < j; i, j = i+1, j-1 {
		sum[i], sum[j] = sum[j], sum[i]
	}
	return hex.EncodeToString(sum[:])
}

func tickerEnvelope() string {
	return `{"response":{"global":{"coin":"Bitcoin","network":"mainnet","height":830000},"result":{"status":"verified","atomical_id":"9125b0a5ba1da0b5d9b1d1bc9a4e9f1e4f6a1e8b9a7f5b0c3d2e1f0a9b8c7d6ei0","candidates":[],"type":"ticker"}}}`
}

func listUnspentEnvelope(t *testing.T, unspent ...map[string]any) string {
	t.Helper()
	if unspent == nil {
		unspent = []map[string]any{}
	}
	body, err := json.Marshal(map[string]any{"response": unspent})
	require.NoError(t, err)
	return string(body)
}

func unspentEntry(txid string, vout int, value uint64, atomicals ...string) map[string]any {
	if atomicals == nil {
		atomicals = []string{}
	}
	return map[string]any{
		"txid":      txid,
		"tx_hash":   txid,
		"vout":      vout,
		"tx_pos":    vout,
		"height":    830000,
		"value":     value,
		"atomicals": atomicals,
	}
}

func txid(b byte) string {
	return strings.Repeat(hex.EncodeToString([]byte{b}), 32)
}
