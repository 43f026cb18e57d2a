package amber

import (
	"encoding/hex"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a stable BLAKE2b-256 digest of w's enclosed value,
// computed over the declaration-ordered member enumeration. Two wrappers
// whose members encode identically share a fingerprint, which makes
// snapshot comparison and dedup cheap without retaining the values.
//
// Members are encoded with MessagePack, so every member type must be
// msgpack-encodable.
func Fingerprint[T any](w *Wrapper[T]) (string, error) {
	ops, err := opsFor[T]()
	if err != nil {
		return "", err
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	enc := msgpack.NewEncoder(h)
	for _, f := range ops.fields(*w.value) {
		if err := enc.EncodeString(f.Name); err != nil {
			return "", newCodecError(ErrMarshal, err)
		}
		if err := enc.Encode(f.Value); err != nil {
			return "", newCodecError(ErrMarshal, err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
