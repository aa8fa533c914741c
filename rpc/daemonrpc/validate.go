package daemonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// asObject marshals params and parses them back as a JSON object, keeping a
// single validation path for typed structs and loose maps alike.
func asObject(params any) (map[string]json.RawMessage, error) {
	if params == nil {
		return nil, ValidationError{Reason: "params must be an object"}
	}
	b, err := json.Marshal(params)
	if err != nil {
		return nil, SerializationError{Source: err}
	}
	obj := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, ValidationError{Reason: "params must be an object"}
	}
	return obj, nil
}

// integral reports whether raw is a JSON number with no fractional part.
// The token must actually be a number: decoding into json.Number alone
// would also let quoted strings like "8" through.
func integral(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return false
	}
	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if dec.Decode(&n) != nil {
		return false
	}
	_, err := n.Int64()
	return err == nil
}

// getblocktemplate is checked before it is sent: a malformed template
// request would otherwise cost a network round-trip only for the daemon to
// refuse it.
func validateBlockTemplate(params any) error {
	obj, err := asObject(params)
	if err != nil {
		return err
	}

	var addr string
	if raw, ok := obj["wallet_address"]; !ok || json.Unmarshal(raw, &addr) != nil {
		return ValidationError{Reason: "wallet_address must be a string"}
	}
	if addr == "" {
		return ValidationError{Reason: "wallet_address must not be empty"}
	}

	raw, ok := obj["reserve_size"]
	if !ok || !integral(raw) {
		return ValidationError{Reason: "reserve_size must be an integer"}
	}

	return nil
}

// The ban list is checked structurally: any sequence whose entries carry
// the ip, ban and seconds fields is accepted, regardless of the concrete
// type the caller built it from.
func validateBanList(params any) error {
	obj, err := asObject(params)
	if err != nil {
		return err
	}

	raw, ok := obj["bans"]
	if !ok {
		return ValidationError{Reason: "params must contain a bans list"}
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return ValidationError{Reason: "bans must be a list of objects"}
	}

	for i, e := range entries {
		var ip string
		if raw, ok := e["ip"]; !ok || json.Unmarshal(raw, &ip) != nil {
			return ValidationError{Reason: fmt.Sprintf("bans[%d]: ip must be a string", i)}
		}
		var ban bool
		if raw, ok := e["ban"]; !ok || json.Unmarshal(raw, &ban) != nil {
			return ValidationError{Reason: fmt.Sprintf("bans[%d]: ban must be a boolean", i)}
		}
		if raw, ok := e["seconds"]; !ok || !integral(raw) {
			return ValidationError{Reason: fmt.Sprintf("bans[%d]: seconds must be an integer", i)}
		}
	}

	return nil
}
