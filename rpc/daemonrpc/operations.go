package daemonrpc

import "sort"

// Wire method names understood by the daemon.
const (
	MethodGetBlockCount          = "getblockcount"
	MethodOnGetBlockHash         = "on_getblockhash"
	MethodGetBlockTemplate       = "getblocktemplate"
	MethodSubmitBlock            = "submitblock"
	MethodGetLastBlockHeader     = "get_last_block_header"
	MethodGetBlockHeaderByHash   = "getblockheaderbyhash"
	MethodGetBlockHeaderByHeight = "getblockheaderbyheight"
	MethodGetBlock               = "getblock"
	MethodGetConnections         = "get_connections"
	MethodGetInfo                = "get_info"
	MethodHardForkInfo           = "hard_fork_info"
	MethodSetBans                = "setbans"
	MethodGetBans                = "getbans"
	MethodGetHeight              = "getheight"
	MethodGetTransactions        = "gettransactions"
	MethodIsKeyImageSpent        = "is_key_image_spent"
	MethodSendRawTransaction     = "sendrawtransaction"
	MethodGetTransactionPool     = "get_transaction_pool"
	MethodStopDaemon             = "stop_daemon"
)

// operation describes how a cataloged method goes on the wire. Methods
// with a validator never reach the network when their params fail the
// shape check.
type operation struct {
	convention Convention
	validate   func(params any) error
}

var operations = map[string]operation{
	MethodGetBlockCount:          {convention: Structured},
	MethodOnGetBlockHash:         {convention: Structured},
	MethodGetBlockTemplate:       {convention: Structured, validate: validateBlockTemplate},
	MethodSubmitBlock:            {convention: Structured},
	MethodGetLastBlockHeader:     {convention: Structured},
	MethodGetBlockHeaderByHash:   {convention: Structured},
	MethodGetBlockHeaderByHeight: {convention: Structured},
	MethodGetBlock:               {convention: Structured},
	MethodGetConnections:         {convention: Structured},
	MethodGetInfo:                {convention: Structured},
	MethodHardForkInfo:           {convention: Structured},
	MethodSetBans:                {convention: Structured, validate: validateBanList},
	MethodGetBans:                {convention: Structured},
	MethodGetHeight:              {convention: Direct},
	MethodGetTransactions:        {convention: Direct},
	MethodIsKeyImageSpent:        {convention: Direct},
	MethodSendRawTransaction:     {convention: Direct},
	MethodGetTransactionPool:     {convention: Direct},
	MethodStopDaemon:             {convention: Direct},
}

// Methods lists the operation catalog in lexical order.
func Methods() []string {
	out := make([]string, 0, len(operations))
	for m := range operations {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
