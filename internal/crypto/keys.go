package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the at-rest storage key
const (
	// Argon2Time - iteration count (time cost)
	Argon2Time = 1
	// Argon2Memory - memory in KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - parallelism
	Argon2Threads = 4
	// Argon2KeyLen - output key length in bytes
	Argon2KeyLen = 32
	// SecretSize - required device secret length in bytes
	SecretSize = 32
)

// DeriveStorageKey derives the 32-byte key used to encrypt the credential
// pair at rest. The input is the random per-device secret; the context string
// keeps the key independent of any other derivation from the same secret.
//
// This mirrors what the mobile app gets from the OS keychain: tokens on disk
// are unreadable without the device-local secret.
func DeriveStorageKey(deviceSecret []byte) ([]byte, error) {
	if len(deviceSecret) != SecretSize {
		return nil, fmt.Errorf("device secret must be %d bytes, got %d", SecretSize, len(deviceSecret))
	}

	// The secret doubles as the salt: it is already random and per-device.
	key := argon2.IDKey([]byte("storage"), deviceSecret, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)
	return key, nil
}
