package daemonrpc

import (
	"github.com/xmrtools/monerod-go/util/enc"
)

type GetBlockCountResponse struct {
	Count  uint64 `json:"count"`
	Status string `json:"status"`
}

type GetBlockTemplateRequest struct {
	WalletAddress string `json:"wallet_address"`
	ReserveSize   uint64 `json:"reserve_size"`
}
type GetBlockTemplateResponse struct {
	BlocktemplateBlob enc.Hex `json:"blocktemplate_blob"`
	BlockhashingBlob  enc.Hex `json:"blockhashing_blob"`
	Difficulty        uint64  `json:"difficulty"`
	ExpectedReward    uint64  `json:"expected_reward"`
	Height            uint64  `json:"height"`
	PrevHash          string  `json:"prev_hash"`
	ReservedOffset    uint64  `json:"reserved_offset"`
	Status            string  `json:"status"`
}

type SubmitBlockResponse struct {
	Status string `json:"status"`
}

type BlockHeader struct {
	Depth        uint64 `json:"depth"`
	Difficulty   uint64 `json:"difficulty"`
	Hash         string `json:"hash"`
	Height       uint64 `json:"height"`
	MajorVersion uint8  `json:"major_version"`
	MinorVersion uint8  `json:"minor_version"`
	Nonce        uint64 `json:"nonce"`
	OrphanStatus bool   `json:"orphan_status"`
	PrevHash     string `json:"prev_hash"`
	Reward       uint64 `json:"reward"`
	Timestamp    uint64 `json:"timestamp"`
}

type GetBlockHeaderResponse struct {
	BlockHeader BlockHeader `json:"block_header"`
	Status      string      `json:"status"`
}

type GetBlockHeaderByHashRequest struct {
	Hash string `json:"hash"`
}
type GetBlockHeaderByHeightRequest struct {
	Height uint64 `json:"height"`
}

// GetBlockRequest selects a block either by hash or by height; the daemon
// ignores the zero-valued field.
type GetBlockRequest struct {
	Hash   string `json:"hash,omitempty"`
	Height uint64 `json:"height,omitempty"`
}
type GetBlockResponse struct {
	Blob        enc.Hex     `json:"blob"`
	BlockHeader BlockHeader `json:"block_header"`
	JSON        string      `json:"json"`
	Status      string      `json:"status"`
}

type Connection struct {
	Address         string `json:"address"`
	AvgDownload     uint64 `json:"avg_download"`
	AvgUpload       uint64 `json:"avg_upload"`
	CurrentDownload uint64 `json:"current_download"`
	CurrentUpload   uint64 `json:"current_upload"`
	Height          uint64 `json:"height"`
	Host            string `json:"host"`
	Incoming        bool   `json:"incoming"`
	IP              string `json:"ip"`
	LiveTime        uint64 `json:"live_time"`
	PeerID          string `json:"peer_id"`
	Port            string `json:"port"`
	State           string `json:"state"`
}
type GetConnectionsResponse struct {
	Connections []Connection `json:"connections"`
	Status      string       `json:"status"`
}

type GetInfoResponse struct {
	AltBlocksCount           uint64 `json:"alt_blocks_count"`
	Difficulty               uint64 `json:"difficulty"`
	GreyPeerlistSize         uint64 `json:"grey_peerlist_size"`
	Height                   uint64 `json:"height"`
	IncomingConnectionsCount uint64 `json:"incoming_connections_count"`
	OutgoingConnectionsCount uint64 `json:"outgoing_connections_count"`
	Status                   string `json:"status"`
	Target                   uint64 `json:"target"`
	TargetHeight             uint64 `json:"target_height"`
	TopBlockHash             string `json:"top_block_hash"`
	TxCount                  uint64 `json:"tx_count"`
	TxPoolSize               uint64 `json:"tx_pool_size"`
	WhitePeerlistSize        uint64 `json:"white_peerlist_size"`
}

type HardForkInfoResponse struct {
	EarliestHeight uint64 `json:"earliest_height"`
	Enabled        bool   `json:"enabled"`
	State          uint32 `json:"state"`
	Status         string `json:"status"`
	Threshold      uint32 `json:"threshold"`
	Version        uint8  `json:"version"`
	Votes          uint32 `json:"votes"`
	Voting         uint8  `json:"voting"`
	Window         uint32 `json:"window"`
}

// BanEntry instructs the daemon to block (or unblock) one peer.
type BanEntry struct {
	IP      string `json:"ip"`
	Ban     bool   `json:"ban"`
	Seconds uint32 `json:"seconds"`
}
type SetBansRequest struct {
	Bans []BanEntry `json:"bans"`
}
type SetBansResponse struct {
	Status string `json:"status"`
}
type GetBansResponse struct {
	Bans   []BanEntry `json:"bans"`
	Status string     `json:"status"`
}

type GetHeightResponse struct {
	Height uint64 `json:"height"`
	Status string `json:"status"`
}

type GetTransactionsRequest struct {
	TxsHashes    []string `json:"txs_hashes"`
	DecodeAsJSON bool     `json:"decode_as_json"`
}
type GetTransactionsResponse struct {
	TxsAsHex  []enc.Hex `json:"txs_as_hex"`
	TxsAsJSON []string  `json:"txs_as_json"`
	MissedTx  []string  `json:"missed_tx"`
	Status    string    `json:"status"`
}

type IsKeyImageSpentRequest struct {
	KeyImages []enc.Hex `json:"key_images"`
}
type IsKeyImageSpentResponse struct {
	SpentStatus []int  `json:"spent_status"`
	Status      string `json:"status"`
}

type SendRawTransactionRequest struct {
	TxAsHex    enc.Hex `json:"tx_as_hex"`
	DoNotRelay bool    `json:"do_not_relay"`
}
type SendRawTransactionResponse struct {
	DoubleSpend  bool   `json:"double_spend"`
	FeeTooLow    bool   `json:"fee_too_low"`
	InvalidInput bool   `json:"invalid_input"`
	LowMixin     bool   `json:"low_mixin"`
	NotRelayed   bool   `json:"not_relayed"`
	Overspend    bool   `json:"overspend"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
}

type TxPoolEntry struct {
	BlobSize         uint64  `json:"blob_size"`
	Fee              uint64  `json:"fee"`
	IDHash           string  `json:"id_hash"`
	KeptByBlock      bool    `json:"kept_by_block"`
	LastFailedIDHash string  `json:"last_failed_id_hash"`
	MaxUsedBlockID   string  `json:"max_used_block_id_hash"`
	ReceiveTime      uint64  `json:"receive_time"`
	TxBlob           enc.Hex `json:"tx_blob"`
	TxJSON           string  `json:"tx_json"`
}
type GetTransactionPoolResponse struct {
	Transactions []TxPoolEntry `json:"transactions"`
	Status       string        `json:"status"`
}

type StopDaemonResponse struct {
	Status string `json:"status"`
}
