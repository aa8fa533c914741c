package daemonrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildRequestStructured(t *testing.T) {
	c := New("node.example:18081")
	require.Equal(t, "http://node.example:18081", c.DaemonAddress)

	r, err := c.buildRequest(MethodGetBlockCount, nil, Structured)
	require.NoError(t, err)
	require.Equal(t, "http://node.example:18081/json_rpc", r.url)

	// the envelope carries exactly these four keys, params included even
	// when the method takes no arguments
	body := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(r.body, &body))
	require.Len(t, body, 4)
	require.JSONEq(t, `"2.0"`, string(body["jsonrpc"]))
	require.JSONEq(t, `"0"`, string(body["id"]))
	require.JSONEq(t, `"getblockcount"`, string(body["method"]))
	require.JSONEq(t, `null`, string(body["params"]))

	r, err = c.buildRequest(MethodOnGetBlockHash, []uint64{1000}, Structured)
	require.NoError(t, err)
	require.JSONEq(t, `{"jsonrpc":"2.0","id":"0","method":"on_getblockhash","params":[1000]}`, string(r.body))
}

func TestBuildRequestDirect(t *testing.T) {
	c := New("http://node.example:18081/")

	r, err := c.buildRequest(MethodGetHeight, nil, Direct)
	require.NoError(t, err)
	require.Equal(t, "http://node.example:18081/getheight", r.url)
	require.Nil(t, r.body)

	r, err = c.buildRequest(MethodSendRawTransaction, map[string]string{"tx_as_hex": "dead"}, Direct)
	require.NoError(t, err)
	require.Equal(t, "http://node.example:18081/sendrawtransaction", r.url)
	require.Equal(t, `{"tx_as_hex":"dead"}`, string(r.body))
}

func TestBuildRequestIdempotent(t *testing.T) {
	c := New("node.example:18081")

	for _, conv := range []Convention{Structured, Direct} {
		a, err := c.buildRequest(MethodGetBlockTemplate, GetBlockTemplateRequest{
			WalletAddress: "abc",
			ReserveSize:   8,
		}, conv)
		require.NoError(t, err)
		b, err := c.buildRequest(MethodGetBlockTemplate, GetBlockTemplateRequest{
			WalletAddress: "abc",
			ReserveSize:   8,
		}, conv)
		require.NoError(t, err)
		require.Equal(t, a, b, "%s build is not deterministic", conv)
	}
}

func TestBuildRequestSerializationError(t *testing.T) {
	c := New("node.example:18081")

	for _, conv := range []Convention{Structured, Direct} {
		_, err := c.buildRequest(MethodGetInfo, map[string]any{"bad": func() {}}, conv)
		serr := SerializationError{}
		require.ErrorAs(t, err, &serr)
	}
}

func TestInvokeUnknownMethod(t *testing.T) {
	c := New("node.example:18081")

	_, err := c.Invoke(context.Background(), "bogus_method", nil)
	verr := ValidationError{}
	require.ErrorAs(t, err, &verr)
}

func TestSendTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from now on

	c := New(srv.URL)
	_, err := c.Invoke(context.Background(), MethodGetHeight, nil)
	terr := TransportError{}
	require.ErrorAs(t, err, &terr)
}

func TestSendBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Invoke(context.Background(), MethodGetHeight, nil)
	terr := TransportError{}
	require.ErrorAs(t, err, &terr)
	require.Contains(t, terr.Status, "500")
}

func TestInvokeDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Invoke(context.Background(), MethodGetHeight, nil)
	derr := DecodeError{}
	require.ErrorAs(t, err, &derr)
}

func TestInvokeRawResponses(t *testing.T) {
	const raw = "<html>not json</html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(raw))
	}))
	defer srv.Close()

	// with decoding disabled the exact body comes back, parseable or not
	c := New(srv.URL, WithRawResponses())
	body, err := c.Invoke(context.Background(), MethodGetHeight, nil)
	require.NoError(t, err)
	require.Equal(t, raw, string(body))
}

func TestInvokeDecodesNumbers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","count":9933}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	body, err := c.Invoke(context.Background(), MethodGetHeight, nil)
	require.NoError(t, err)

	m := map[string]any{}
	require.NoError(t, json.Unmarshal(body, &m))
	require.Equal(t, float64(9933), m["count"])
	require.Equal(t, "OK", m["status"])
}

func TestDirectEmptyBody(t *testing.T) {
	var gotLen int64 = -1
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLen = r.ContentLength
		gotPath = r.URL.Path
		w.Write([]byte(`{"height":1,"status":"OK"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Invoke(context.Background(), MethodGetHeight, nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), gotLen)
	require.Equal(t, "/getheight", gotPath)
}

func TestConcurrentCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"height":42,"status":"OK"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)

	done := make(chan error)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := c.GetHeight(context.Background())
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}
