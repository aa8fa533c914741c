// Package daemonrpc is a client binding for the admin and query RPC
// interface of a monerod-compatible daemon.
//
// The daemon speaks two calling conventions: JSON-RPC 2.0 envelopes posted
// to {daemon}/json_rpc, and bare JSON bodies posted to {daemon}/{method}.
// Every cataloged operation is dispatched through Invoke, which picks the
// convention from the method table; the typed methods in methods.go are
// one-line sugar over it.
package daemonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xmrtools/monerod-go/config"
	"github.com/xmrtools/monerod-go/rpc"
)

// Convention selects how a request is laid on the wire.
type Convention int

const (
	// Structured wraps params in a JSON-RPC 2.0 envelope posted to
	// {daemon}/json_rpc.
	Structured Convention = iota
	// Direct posts the bare serialized params, or an empty body, to
	// {daemon}/{method}.
	Direct
)

func (c Convention) String() string {
	if c == Structured {
		return "structured"
	}
	return "direct"
}

// Client binds to one daemon. Its configuration is fixed at construction,
// so a Client is safe for concurrent use; responses of concurrent calls
// complete in whatever order the daemon answers.
type Client struct {
	DaemonAddress string

	decode bool
	http   *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the transport. Use it to set proxies or TLS
// settings; the binding itself never configures either.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithTimeout bounds every round-trip. The default transport has no
// timeout; per-call deadlines can also be set through the context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http = &http.Client{Timeout: d}
	}
}

// WithRawResponses disables response decoding: calls return the exact body
// received from the daemon, without checking that it parses as JSON.
func WithRawResponses() Option {
	return func(c *Client) {
		c.decode = false
	}
}

func New(addr string, opts ...Option) *Client {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	c := &Client{
		DaemonAddress: strings.TrimSuffix(addr, "/"),
		decode:        true,
		http:          http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// request is the transient descriptor consumed by send. A nil body means
// the POST carries no payload.
type request struct {
	url  string
	body []byte
}

// buildRequest performs no I/O. Building the same (method, params,
// convention) twice yields byte-identical output: the envelope id is the
// constant "0".
func (c *Client) buildRequest(method string, params any, conv Convention) (request, error) {
	if conv == Structured {
		b, err := json.Marshal(rpc.Request{
			JsonRpc: "2.0",
			Id:      "0",
			Method:  method,
			Params:  params,
		})
		if err != nil {
			return request{}, SerializationError{Source: err}
		}
		return request{url: c.DaemonAddress + config.JSON_RPC_PATH, body: b}, nil
	}

	r := request{url: c.DaemonAddress + "/" + method}
	if params == nil {
		return r, nil
	}
	b, err := json.Marshal(params)
	if err != nil {
		return request{}, SerializationError{Source: err}
	}
	r.body = b
	return r, nil
}

func (c *Client) send(ctx context.Context, r request) ([]byte, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, body)
	if err != nil {
		return nil, TransportError{Source: err}
	}
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", config.USER_AGENT)

	rpc.Log.Debugf("POST %s %s", r.url, r.body)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, TransportError{Source: err}
	}
	defer res.Body.Close()

	dat, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, TransportError{Source: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, TransportError{Status: res.Status}
	}

	rpc.Log.Debugf("response %s", dat)

	return dat, nil
}

// Invoke dispatches one of the cataloged operations and returns the
// daemon's complete response body. With decoding enabled (the default) the
// body is checked to be well-formed JSON; with WithRawResponses it is
// returned exactly as received.
//
// A nil params value means the method takes no arguments: the Structured
// envelope then carries params:null, a Direct request posts an empty body.
func (c *Client) Invoke(ctx context.Context, method string, params any) (json.RawMessage, error) {
	op, ok := operations[method]
	if !ok {
		return nil, ValidationError{Reason: "unknown method " + strconv.Quote(method)}
	}
	if op.validate != nil {
		if err := op.validate(params); err != nil {
			return nil, err
		}
	}

	req, err := c.buildRequest(method, params, op.convention)
	if err != nil {
		return nil, err
	}

	body, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.decode {
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return nil, DecodeError{Source: err}
		}
	}

	return body, nil
}
