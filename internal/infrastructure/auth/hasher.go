package auth

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

var errVerification = errors.New("password verification failed")

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

// Verify accepts bcrypt hashes and the werkzeug "pbkdf2:" and "scrypt:"
// formats found on accounts created before the bcrypt switch. Every failure
// returns the same error.
func (h *BcryptPasswordHasher) Verify(password, hashed string) error {
	var ok bool
	switch {
	case strings.HasPrefix(hashed, "pbkdf2:"), strings.HasPrefix(hashed, "scrypt:"):
		ok = verifyWerkzeug(password, hashed)
	default:
		ok = bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
	}
	if !ok {
		return errVerification
	}
	return nil
}

// verifyWerkzeug checks "method$salt$hexdigest" hashes.
func verifyWerkzeug(password, hashed string) bool {
	parts := strings.SplitN(hashed, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method, salt, digestHex := parts[0], parts[1], parts[2]
	want, err := hex.DecodeString(digestHex)
	if err != nil || len(want) == 0 {
		return false
	}

	params := strings.Split(method, ":")
	var got []byte
	switch params[0] {
	case "pbkdf2":
		got, err = werkzeugPBKDF2(password, salt, params[1:])
	case "scrypt":
		got, err = werkzeugScrypt(password, salt, params[1:], len(want))
	default:
		return false
	}
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(got, want) == 1
}

func werkzeugPBKDF2(password, salt string, params []string) ([]byte, error) {
	hashName := "sha256"
	iterations := 600000
	if len(params) > 0 && params[0] != "" {
		hashName = params[0]
	}
	if len(params) > 1 {
		n, err := strconv.Atoi(params[1])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid iterations %q", params[1])
		}
		iterations = n
	}

	var newHash func() hash.Hash
	switch hashName {
	case "sha256":
		newHash = sha256.New
	case "sha512":
		newHash = sha512.New
	case "sha1":
		newHash = sha1.New
	default:
		return nil, fmt.Errorf("unsupported pbkdf2 hash %q", hashName)
	}
	return pbkdf2.Key([]byte(password), []byte(salt), iterations, newHash().Size(), newHash), nil
}

func werkzeugScrypt(password, salt string, params []string, keyLen int) ([]byte, error) {
	n, r, p := 32768, 8, 1
	values := []*int{&n, &r, &p}
	for i, raw := range params {
		if i >= len(values) {
			break
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid scrypt parameter %q", raw)
		}
		*values[i] = v
	}
	return scrypt.Key([]byte(password), []byte(salt), n, r, p, keyLen)
}
