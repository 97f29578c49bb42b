package request

// SetProviderKeyRequest represents the request body for storing the
// market-data provider API key.
type SetProviderKeyRequest struct {
	Key string `json:"key"`
}
