package model

import "time"

// ProviderKey holds the market-data provider API key record.
// The key is stored encrypted at rest; Key carries the decrypted value
// in memory only.
type ProviderKey struct {
	Key       string    `json:"key"`
	UpdatedAt time.Time `json:"updatedAt"`
}
