// Package signature serializes a component's ordered hook-invocation list
// into the opaque string handed to the hot-reload facility.
//
// The reload runtime only ever compares two signatures for equality, so
// the encoding just needs to be compact and deterministic: the ordered
// hook list is marshaled with msgpack and wrapped in unpadded URL-safe
// base64.
package signature

import (
	"encoding/base64"
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrInvalidFormat is returned when a signature string cannot be decoded.
var ErrInvalidFormat = errors.New("signature: invalid format")

// Serialize encodes the ordered hook descriptor list. Equal inputs always
// produce equal strings; any change to hook order, identity, or count
// produces a different string.
func Serialize(hooks []string) (string, error) {
	packed, err := msgpack.Marshal(hooks)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// Deserialize decodes a signature string back into its hook list.
// Used by build tooling to diff signatures across reloads.
func Deserialize(sig string) ([]string, error) {
	packed, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	var hooks []string
	if err := msgpack.Unmarshal(packed, &hooks); err != nil {
		return nil, ErrInvalidFormat
	}
	return hooks, nil
}
