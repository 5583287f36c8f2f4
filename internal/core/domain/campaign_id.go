package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// CampaignIDLength is the size of a campaign identifier in bytes.
const CampaignIDLength = 32

// CampaignID is the keccak256 digest identifying a campaign.
type CampaignID [CampaignIDLength]byte

// NewCampaignID derives the identifier of the campaign that creator
// starts with the given title and description. The digest covers the
// tightly packed encoding of the three values (the 20 address bytes
// followed by the raw UTF-8 bytes of each string), which matches
// Solidity's keccak256(abi.encodePacked(creator, title, description)).
func NewCampaignID(creator Address, title, description string) CampaignID {
	h := sha3.NewLegacyKeccak256()
	h.Write(creator[:])
	h.Write([]byte(title))
	h.Write([]byte(description))

	var id CampaignID
	h.Sum(id[:0])
	return id
}

// ParseCampaignID decodes a 0x-prefixed (or bare) 64 digit hex string.
func ParseCampaignID(s string) (CampaignID, error) {
	var id CampaignID
	raw := trimHexPrefix(strings.TrimSpace(s))
	if len(raw) != 2*CampaignIDLength {
		return id, fmt.Errorf("%w: want %d hex digits, got %d", ErrInvalidCampaignID, 2*CampaignIDLength, len(raw))
	}
	if _, err := hex.Decode(id[:], []byte(raw)); err != nil {
		return id, fmt.Errorf("%w: %v", ErrInvalidCampaignID, err)
	}
	return id, nil
}

// Hex returns the lowercase 0x-prefixed form of id.
func (id CampaignID) Hex() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id CampaignID) String() string {
	return id.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (id CampaignID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *CampaignID) UnmarshalText(text []byte) error {
	parsed, err := ParseCampaignID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
