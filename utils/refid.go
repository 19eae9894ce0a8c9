package utils

import (
	"encoding/hex"
	"io"
)

// NewReferenceID builds an opaque enquiry reference of the form
// "enq_" + 8 lowercase hex digits from 4 bytes read off rand.
// Ids are not deduplicated against existing rows.
func NewReferenceID(rand io.Reader) (string, error) {
	b := make([]byte, 4)
	if _, err := io.ReadFull(rand, b); err != nil {
		return "", err
	}
	return "enq_" + hex.EncodeToString(b), nil
}
