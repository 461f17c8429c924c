package utility

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	passwordHashVersion = "v1"
	passwordIterations  = 180000
)

// HashPassword băm mật khẩu với salt ngẫu nhiên (SHA-256 lặp nhiều vòng).
// Kết quả có dạng: v1$<iterations>$<salt>$<digest>
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	digest := derivePasswordDigest(password, salt, passwordIterations)
	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedDigest := base64.RawStdEncoding.EncodeToString(digest)

	return fmt.Sprintf("%s$%d$%s$%s", passwordHashVersion, passwordIterations, encodedSalt, encodedDigest), nil
}

// VerifyPassword kiểm tra mật khẩu với chuỗi hash đã lưu
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		return false
	}
	if parts[0] != passwordHashVersion {
		return false
	}

	iters, err := strconv.Atoi(parts[1])
	if err != nil || iters < 100000 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return false
	}

	expectedDigest, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(expectedDigest) != sha256.Size {
		return false
	}

	actualDigest := derivePasswordDigest(password, salt, iters)
	return subtle.ConstantTimeCompare(actualDigest, expectedDigest) == 1
}

func derivePasswordDigest(password string, salt []byte, rounds int) []byte {
	digest := sha256.Sum256(append(salt, []byte(password)...))
	buf := digest[:]
	for i := 1; i < rounds; i++ {
		next := sha256.Sum256(append(buf, salt...))
		buf = next[:]
	}
	finalDigest := make([]byte, len(buf))
	copy(finalDigest, buf)
	return finalDigest
}
