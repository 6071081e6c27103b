// Package runid names analysis runs with sortable identifiers.
package runid

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, lower case, as used by TypeID.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the size of an encoded id.
const Length = 26

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// New returns a UUIDv7 encoded as 26 base32 characters. Ids created later
// sort after earlier ones.
func New() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return Encode(id), nil
}

// Encode renders a UUID in run id form.
func Encode(id uuid.UUID) string {
	return encoding.EncodeToString(id[:])
}

// Parse decodes a run id back to its UUID.
func Parse(s string) (uuid.UUID, error) {
	if err := Validate(s); err != nil {
		return uuid.Nil, err
	}
	b, err := encoding.DecodeString(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("decode run id: %w", err)
	}
	return uuid.FromBytes(b)
}

// Validate checks that s has the length and alphabet of a run id.
func Validate(s string) error {
	if len(s) != Length {
		return fmt.Errorf("run id must be exactly %d characters, got %d", Length, len(s))
	}
	for i, c := range s {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
