package encrypter

// Encrypter provides symmetric encryption plus service-key hashing.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	HashServiceKey(key string) (string, error)
	VerifyServiceKey(hashed, key string) bool
}

// New creates a new Encrypter with the given AES key.
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}
