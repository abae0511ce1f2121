package encrypter

import "errors"

var (
	ErrInvalidKeyLength  = errors.New("encrypter: AES key must be 16, 24 or 32 bytes")
	ErrInvalidCiphertext = errors.New("encrypter: ciphertext too short")
)
