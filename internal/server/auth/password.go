package auth

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/foliovault/internal/common"
	"golang.org/x/crypto/argon2"
)

// Stored hashes look like $a2id$<rounds>$<hex salt>$<hex digest> so the
// scheme tag, cost parameter, salt and digest are each independently
// recoverable. The digest is argon2id over the password with the stored
// salt and rounds, so existing hashes keep verifying if the default cost
// changes later.
const (
	hashScheme = "a2id"

	// DefaultHashRounds is the argon2id time parameter for new hashes.
	DefaultHashRounds = 3

	argonMemoryKiB = 64 * 1024
	argonThreads   = 4
	argonKeyLen    = 32
	saltBytes      = 16
)

// HashPassword produces a self-describing hash string for storage.
func HashPassword(password string, rounds int) (string, error) {
	if rounds <= 0 {
		return "", common.ErrorValidation
	}

	salt, err := common.MakeRandHexString(saltBytes)
	if err != nil {
		return "", err
	}

	digest := argon2.IDKey([]byte(password), []byte(salt), uint32(rounds), argonMemoryKiB, argonThreads, argonKeyLen)

	return fmt.Sprintf("$%s$%d$%s$%s", hashScheme, rounds, salt, hex.EncodeToString(digest)), nil
}

// VerifyPassword recomputes the digest from the parameters embedded in the
// stored string and compares in constant time. Any structural problem with
// the stored hash yields false, never an error: a corrupt hash and a wrong
// password must be indistinguishable to the caller.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != hashScheme {
		return false
	}

	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 {
		return false
	}

	salt := parts[3]
	expected, err := hex.DecodeString(parts[4])
	if err != nil || len(expected) == 0 {
		return false
	}

	digest := argon2.IDKey([]byte(password), []byte(salt), uint32(rounds), argonMemoryKiB, argonThreads, argonKeyLen)

	return subtle.ConstantTimeCompare(digest, expected) == 1
}
