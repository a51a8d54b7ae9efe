package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cinetix/internal/domain"
)

// Claims is the decoded identity carried by an access token.
type Claims struct {
	UserID int64
	Role   domain.Role
}

func (s *Service) issueToken(u *domain.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", u.ID),
		"role": string(u.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

// ParseToken validates a signed access token and extracts its claims.
//
// Returns:
//   - *Claims: the token's identity when valid.
//   - error: ErrInvalidToken for any malformed, forged, or expired token.
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	const op = "service.auth.ParseToken"

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidToken)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidToken)
	}

	sub, err := mc.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidToken)
	}

	var userID int64
	if _, err := fmt.Sscan(sub, &userID); err != nil || userID <= 0 {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidToken)
	}

	roleStr, _ := mc["role"].(string)
	role := domain.Role(roleStr)
	if !role.Valid() {
		return nil, fmt.Errorf("%s:%w", op, ErrInvalidToken)
	}

	return &Claims{UserID: userID, Role: role}, nil
}
