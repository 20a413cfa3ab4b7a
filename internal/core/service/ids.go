package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// newEntityID returns a random identifier for embedded entities (exercises,
// sets, meals, foods), which live inside their parent document and never get
// a database-assigned id.
func newEntityID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
