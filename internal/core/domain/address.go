package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressLength is the size of an account address in bytes.
const AddressLength = 20

// Address identifies an account that calls into the ledger. It is the
// 20-byte form used by Ethereum-style chains.
type Address [AddressLength]byte

// ParseAddress decodes a hex address. The 0x prefix is optional and the
// digits are case-insensitive; the EIP-55 checksum is not enforced.
func ParseAddress(s string) (Address, error) {
	var a Address
	raw := trimHexPrefix(strings.TrimSpace(s))
	if len(raw) != 2*AddressLength {
		return a, fmt.Errorf("%w: want %d hex digits, got %d", ErrInvalidAddress, 2*AddressLength, len(raw))
	}
	if _, err := hex.Decode(a[:], []byte(raw)); err != nil {
		return a, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return a, nil
}

// trimHexPrefix drops one leading "0x" or "0X".
func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Hex returns the EIP-55 checksummed representation of a.
func (a Address) Hex() string {
	lower := hex.EncodeToString(a[:])

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := h.Sum(nil)

	out := []byte(lower)
	for i := range out {
		if out[i] < 'a' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] -= 'a' - 'A'
		}
	}
	return "0x" + string(out)
}

func (a Address) String() string {
	return a.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
