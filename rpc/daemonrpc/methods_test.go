package daemonrpc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xmrtools/monerod-go/rpc"

	"github.com/stretchr/testify/require"
)

// fakeDaemon records the last request and answers with a fixed body.
type fakeDaemon struct {
	path string
	body []byte

	reply string
}

func (f *fakeDaemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.path = r.URL.Path
	f.body, _ = io.ReadAll(r.Body)
	w.Write([]byte(f.reply))
}

func TestOnGetBlockHash(t *testing.T) {
	daemon := &fakeDaemon{
		reply: `{"id":"0","jsonrpc":"2.0","result":"e22cf75f39ae720e8b71b3d120a5ac03f0db50bba6379e2850975b4859190bc6"}`,
	}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	c := New(srv.URL)
	hash, err := c.OnGetBlockHash(context.Background(), 1000)
	require.NoError(t, err)
	require.Equal(t, "e22cf75f39ae720e8b71b3d120a5ac03f0db50bba6379e2850975b4859190bc6", hash)

	require.Equal(t, "/json_rpc", daemon.path)
	req := rpc.Request{}
	require.NoError(t, json.Unmarshal(daemon.body, &req))
	require.Equal(t, "on_getblockhash", req.Method)
	require.Equal(t, "0", req.Id)
	params, err := json.Marshal(req.Params)
	require.NoError(t, err)
	require.JSONEq(t, `[1000]`, string(params))
}

func TestGetBlockCountRoundTrip(t *testing.T) {
	daemon := &fakeDaemon{
		reply: `{"id":"0","jsonrpc":"2.0","result":{"status":"OK","count":9933}}`,
	}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.GetBlockCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(9933), res.Count)
	require.Equal(t, "OK", res.Status)
}

func TestStructuredDaemonError(t *testing.T) {
	daemon := &fakeDaemon{
		reply: `{"id":"0","jsonrpc":"2.0","error":{"code":-7,"message":"Block not accepted"}}`,
	}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SubmitBlock(context.Background(), []byte{0x01, 0x02})
	var rpcErr *rpc.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, -7, rpcErr.Code)

	// the blob goes out as a bare hex string params value
	req := rpc.Request{}
	require.NoError(t, json.Unmarshal(daemon.body, &req))
	require.Equal(t, "submitblock", req.Method)
	require.Equal(t, "0102", req.Params)
}

func TestGetTransactionsRequestShape(t *testing.T) {
	daemon := &fakeDaemon{
		reply: `{"status":"OK","txs_as_hex":["00ff"],"missed_tx":[]}`,
	}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.GetTransactions(context.Background(), GetTransactionsRequest{
		TxsHashes:    []string{"d6e48158472848e6687173a91ae6eebfa3e1d778e65252ee99d7515d63090408"},
		DecodeAsJSON: true,
	})
	require.NoError(t, err)
	require.Equal(t, "OK", res.Status)
	require.Len(t, res.TxsAsHex, 1)
	require.Equal(t, "00ff", res.TxsAsHex[0].String())

	// direct convention: no envelope around the params
	require.Equal(t, "/gettransactions", daemon.path)
	require.JSONEq(t,
		`{"txs_hashes":["d6e48158472848e6687173a91ae6eebfa3e1d778e65252ee99d7515d63090408"],"decode_as_json":true}`,
		string(daemon.body))
}

func TestSetBans(t *testing.T) {
	daemon := &fakeDaemon{
		reply: `{"id":"0","jsonrpc":"2.0","result":{"status":"OK"}}`,
	}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.SetBans(context.Background(), []BanEntry{
		{IP: "192.168.1.50", Ban: true, Seconds: 3600},
	})
	require.NoError(t, err)
	require.Equal(t, "OK", res.Status)

	req := rpc.Request{}
	require.NoError(t, json.Unmarshal(daemon.body, &req))
	params, err := json.Marshal(req.Params)
	require.NoError(t, err)
	require.JSONEq(t, `{"bans":[{"ip":"192.168.1.50","ban":true,"seconds":3600}]}`, string(params))
}

func TestStopDaemon(t *testing.T) {
	daemon := &fakeDaemon{reply: `{"status":"OK"}`}
	srv := httptest.NewServer(daemon)
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.StopDaemon(context.Background())
	require.NoError(t, err)
	require.Equal(t, "OK", res.Status)
	require.Equal(t, "/stop_daemon", daemon.path)
	require.Empty(t, daemon.body)
}

func TestMethodsCatalog(t *testing.T) {
	ms := Methods()
	require.Len(t, ms, 19)
	require.Contains(t, ms, MethodGetBlockTemplate)
	require.Contains(t, ms, MethodStopDaemon)
	// lexical order
	for i := 1; i < len(ms); i++ {
		require.Less(t, ms[i-1], ms[i])
	}
}
