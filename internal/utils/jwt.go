package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	jwtSecret   []byte
	jwtLifetime = 240 * time.Hour
)

// Configure 設定簽發 token 用的密鑰和有效時間，必須在啟動時呼叫
func Configure(secret string, expireHours int) {
	jwtSecret = []byte(secret)
	if expireHours > 0 {
		jwtLifetime = time.Duration(expireHours) * time.Hour
	}
}

type Claims struct {
	UserID uint `json:"user_id"`
	jwt.StandardClaims
}

// GenerateToken 生成一個新的 JWT token
func GenerateToken(userID uint) (string, error) {
	nowTime := time.Now()
	expireTime := nowTime.Add(jwtLifetime)

	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime.Unix(),
			IssuedAt:  nowTime.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(jwtSecret)
}

// ParseToken 解析和驗證 JWT token
func ParseToken(token string) (*Claims, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*Claims); ok && tokenClaims.Valid {
			return claims, nil
		}
	}

	return nil, err
}
