package service

import "context"

// TokenCipher seals OAuth credentials before they reach storage.
type TokenCipher interface {
	Seal(ctx context.Context, plaintext string) (string, error)
	Open(ctx context.Context, sealed string) (string, error)
}

// PageArchive keeps raw provider responses for replay and debugging.
type PageArchive interface {
	Put(ctx context.Context, key string, body []byte) error
}
