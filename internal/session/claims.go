package session

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims mirrors the claims the backend embeds in issued tokens:
// the numeric user id, the email subject, and the granted roles.
type tokenClaims struct {
	UserID int64    `json:"id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

func (c *tokenClaims) userIDString() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatInt(c.UserID, 10)
}

// decodeClaims extracts the claims without verifying the signature. The
// client never holds the signing secret; the backend re-validates the
// token on every request, so the local decode only feeds display state.
func decodeClaims(token string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
