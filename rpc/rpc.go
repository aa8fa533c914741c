package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/xmrtools/monerod-go/logger"
)

var Log *logger.Log = logger.DiscardLog

// https://www.jsonrpc.org/specification#request_object
//
// The daemon expects the params key to be present even when a method takes
// no arguments, so Params carries no omitempty. Id is always "0": the
// binding issues one request per connection and never matches responses by
// id.
type Request struct {
	JsonRpc string `json:"jsonrpc"` // Must be "2.0"
	Id      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

// https://www.jsonrpc.org/specification#response_object
type Response struct {
	JsonRpc string          `json:"jsonrpc"` // Must be "2.0"
	Id      any             `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// https://www.jsonrpc.org/specification#error_object
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}
