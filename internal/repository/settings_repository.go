package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/jkoster/portfolio-performance-backend/internal/apperrors"
	"github.com/jkoster/portfolio-performance-backend/internal/model"
)

// SettingsRepository stores application settings. The market-data
// provider API key is encrypted at rest with fernet; only the encrypted
// token ever touches the database.
type SettingsRepository struct {
	db  *sql.DB
	key *fernet.Key
}

// NewSettingsRepository creates a SettingsRepository. The encryption key
// must be a base64 fernet key (see fernet.GenerateKey).
func NewSettingsRepository(db *sql.DB, encryptionKey string) (*SettingsRepository, error) {
	key, err := fernet.DecodeKey(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}

	return &SettingsRepository{db: db, key: key}, nil
}

// GetProviderKey returns the decrypted provider API key.
// Returns apperrors.ErrProviderKeyNotFound when no key has been stored.
func (r *SettingsRepository) GetProviderKey() (model.ProviderKey, error) {
	query := `SELECT provider_key_encrypted, updated_at FROM settings WHERE id = 1`

	var encrypted string
	var updatedAt sql.NullTime

	err := r.db.QueryRow(query).Scan(&encrypted, &updatedAt)
	if err == sql.ErrNoRows {
		return model.ProviderKey{}, apperrors.ErrProviderKeyNotFound
	}
	if err != nil {
		return model.ProviderKey{}, fmt.Errorf("failed to query settings: %w", err)
	}
	if encrypted == "" {
		return model.ProviderKey{}, apperrors.ErrProviderKeyNotFound
	}

	// TTL 0: stored keys do not expire.
	plaintext := fernet.VerifyAndDecrypt([]byte(encrypted), 0, []*fernet.Key{r.key})
	if plaintext == nil {
		return model.ProviderKey{}, fmt.Errorf("failed to decrypt provider key")
	}

	return model.ProviderKey{
		Key:       string(plaintext),
		UpdatedAt: updatedAt.Time,
	}, nil
}

// SetProviderKey encrypts and upserts the provider API key.
func (r *SettingsRepository) SetProviderKey(key string) error {
	token, err := fernet.EncryptAndSign([]byte(key), r.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt provider key: %w", err)
	}

	query := `
        INSERT INTO settings (id, provider_key_encrypted, updated_at)
        VALUES (1, ?, ?)
        ON CONFLICT (id) DO UPDATE SET
            provider_key_encrypted = excluded.provider_key_encrypted,
            updated_at = excluded.updated_at
    `

	if _, err := r.db.Exec(query, string(token), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to store provider key: %w", err)
	}

	return nil
}
