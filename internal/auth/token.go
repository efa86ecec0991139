package auth

import (
	"fmt"
	"time"

	"github.com/business-console-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims - полезная нагрузка токена оператора
type Claims struct {
	UserUUID string `json:"userUuid"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager выпускает и проверяет bearer-токены консоли
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создаёт новый менеджер токенов
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue выпускает подписанный токен для пользователя
func (m *TokenManager) Issue(user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.ttl)

	claims := Claims{
		UserUUID: user.UUID,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UUID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse проверяет подпись и срок действия токена
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
