package daemonrpc

import (
	"context"
	"encoding/json"

	"github.com/xmrtools/monerod-go/rpc"
	"github.com/xmrtools/monerod-go/util/enc"
)

// call runs Invoke and decodes the response into out. For Structured
// methods the JSON-RPC envelope is unwrapped first, and a daemon-side
// rpc.Error becomes the call error.
func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	body, err := c.Invoke(ctx, method, params)
	if err != nil {
		return err
	}

	if operations[method].convention == Structured {
		res := rpc.Response{}
		if err := json.Unmarshal(body, &res); err != nil {
			return DecodeError{Source: err}
		}
		if res.Error != nil {
			return res.Error
		}
		if out == nil || len(res.Result) == 0 {
			return nil
		}
		if err := json.Unmarshal(res.Result, out); err != nil {
			return DecodeError{Source: err}
		}
		return nil
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return DecodeError{Source: err}
	}
	return nil
}

func (c *Client) GetBlockCount(ctx context.Context) (*GetBlockCountResponse, error) {
	o := &GetBlockCountResponse{}
	return o, c.call(ctx, MethodGetBlockCount, nil, o)
}

// OnGetBlockHash returns the hash of the main-chain block at the given
// height. The daemon expects the height as a single-element array.
func (c *Client) OnGetBlockHash(ctx context.Context, height uint64) (string, error) {
	var hash string
	return hash, c.call(ctx, MethodOnGetBlockHash, []uint64{height}, &hash)
}

func (c *Client) GetBlockTemplate(ctx context.Context, p GetBlockTemplateRequest) (*GetBlockTemplateResponse, error) {
	o := &GetBlockTemplateResponse{}
	return o, c.call(ctx, MethodGetBlockTemplate, p, o)
}

// SubmitBlock sends a mined block blob; the blob itself is the params
// value.
func (c *Client) SubmitBlock(ctx context.Context, blob enc.Hex) (*SubmitBlockResponse, error) {
	o := &SubmitBlockResponse{}
	return o, c.call(ctx, MethodSubmitBlock, blob, o)
}

func (c *Client) GetLastBlockHeader(ctx context.Context) (*GetBlockHeaderResponse, error) {
	o := &GetBlockHeaderResponse{}
	return o, c.call(ctx, MethodGetLastBlockHeader, nil, o)
}

func (c *Client) GetBlockHeaderByHash(ctx context.Context, p GetBlockHeaderByHashRequest) (*GetBlockHeaderResponse, error) {
	o := &GetBlockHeaderResponse{}
	return o, c.call(ctx, MethodGetBlockHeaderByHash, p, o)
}

func (c *Client) GetBlockHeaderByHeight(ctx context.Context, p GetBlockHeaderByHeightRequest) (*GetBlockHeaderResponse, error) {
	o := &GetBlockHeaderResponse{}
	return o, c.call(ctx, MethodGetBlockHeaderByHeight, p, o)
}

func (c *Client) GetBlock(ctx context.Context, p GetBlockRequest) (*GetBlockResponse, error) {
	o := &GetBlockResponse{}
	return o, c.call(ctx, MethodGetBlock, p, o)
}

func (c *Client) GetConnections(ctx context.Context) (*GetConnectionsResponse, error) {
	o := &GetConnectionsResponse{}
	return o, c.call(ctx, MethodGetConnections, nil, o)
}

func (c *Client) GetInfo(ctx context.Context) (*GetInfoResponse, error) {
	o := &GetInfoResponse{}
	return o, c.call(ctx, MethodGetInfo, nil, o)
}

func (c *Client) HardForkInfo(ctx context.Context) (*HardForkInfoResponse, error) {
	o := &HardForkInfoResponse{}
	return o, c.call(ctx, MethodHardForkInfo, nil, o)
}

func (c *Client) SetBans(ctx context.Context, bans []BanEntry) (*SetBansResponse, error) {
	o := &SetBansResponse{}
	return o, c.call(ctx, MethodSetBans, SetBansRequest{Bans: bans}, o)
}

func (c *Client) GetBans(ctx context.Context) (*GetBansResponse, error) {
	o := &GetBansResponse{}
	return o, c.call(ctx, MethodGetBans, nil, o)
}

func (c *Client) GetHeight(ctx context.Context) (*GetHeightResponse, error) {
	o := &GetHeightResponse{}
	return o, c.call(ctx, MethodGetHeight, nil, o)
}

func (c *Client) GetTransactions(ctx context.Context, p GetTransactionsRequest) (*GetTransactionsResponse, error) {
	o := &GetTransactionsResponse{}
	return o, c.call(ctx, MethodGetTransactions, p, o)
}

func (c *Client) IsKeyImageSpent(ctx context.Context, p IsKeyImageSpentRequest) (*IsKeyImageSpentResponse, error) {
	o := &IsKeyImageSpentResponse{}
	return o, c.call(ctx, MethodIsKeyImageSpent, p, o)
}

func (c *Client) SendRawTransaction(ctx context.Context, p SendRawTransactionRequest) (*SendRawTransactionResponse, error) {
	o := &SendRawTransactionResponse{}
	return o, c.call(ctx, MethodSendRawTransaction, p, o)
}

func (c *Client) GetTransactionPool(ctx context.Context) (*GetTransactionPoolResponse, error) {
	o := &GetTransactionPoolResponse{}
	return o, c.call(ctx, MethodGetTransactionPool, nil, o)
}

func (c *Client) StopDaemon(ctx context.Context) (*StopDaemonResponse, error) {
	o := &StopDaemonResponse{}
	return o, c.call(ctx, MethodStopDaemon, nil, o)
}
