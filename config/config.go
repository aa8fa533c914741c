package config

import "strconv"

const NAME = "monerod-go"

const VERSION_MAJOR = 0
const VERSION_MINOR = 1
const VERSION_PATCH = 0

// Default ports of a monerod-compatible daemon. The unrestricted port
// accepts every admin call; public nodes usually expose the restricted
// port only.
const RPC_BIND_PORT = 18081
const RESTRICTED_RPC_PORT = 18089

const JSON_RPC_PATH = "/json_rpc"

var VERSION = strconv.Itoa(VERSION_MAJOR) + "." + strconv.Itoa(VERSION_MINOR) + "." + strconv.Itoa(VERSION_PATCH)

var USER_AGENT = NAME + "/" + VERSION
