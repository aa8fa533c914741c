package enc

import "encoding/hex"

// Hex is a byte slice that travels as a hexadecimal string in JSON and text
// encodings. Block blobs, raw transactions and key images use it on the
// wire.
type Hex []byte

func (h Hex) String() string {
	return hex.EncodeToString(h)
}

func (h Hex) MarshalText() ([]byte, error) {
	dst := make([]byte, hex.EncodedLen(len(h)))
	hex.Encode(dst, h)
	return dst, nil
}

func (h *Hex) UnmarshalText(c []byte) error {
	dst := make([]byte, hex.DecodedLen(len(c)))
	n, err := hex.Decode(dst, c)
	*h = append((*h)[:0], dst[:n]...)
	return err
}
