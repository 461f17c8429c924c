package utility

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"lets_reconcile/internal/common"
)

// tokenLifetime thời gian sống của JWT token
const tokenLifetime = 72 * time.Hour

// tokenClaims data được mã hóa trong JWT token
type tokenClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token cho user.
// Trả về map chứa token đã ký để thống nhất với các hàm tạo token khác.
func CreateToken(secret string, userID string, timeHex string, randomNumber string) (map[string]string, error) {
	claims := tokenClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// VerifyToken kiểm tra chữ ký và hạn của JWT token, trả về userId trong claims
func VerifyToken(secret string, tokenString string) (string, error) {
	claims := new(tokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}
	if !token.Valid {
		return "", common.ErrTokenInvalid
	}
	return claims.UserID, nil
}
