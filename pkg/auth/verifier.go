package auth

import (
	"errors"
	"fmt"
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the ID token claims the API relies on. Subject is the account uid.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates Firebase ID tokens (RS256 via JWKS). When a shared
// secret is configured, HS256 tokens are accepted too; that path exists for
// local development and tests.
type Verifier struct {
	keys      *Provider
	secret    []byte
	projectID string
}

func NewVerifier(keys *Provider, projectID, secret string) *Verifier {
	v := &Verifier{keys: keys, projectID: projectID}
	if secret != "" {
		v.secret = []byte(secret)
	}
	return v
}

// Verify parses the token and returns its claims.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc,
		jwt.WithValidMethods([]string{"RS256", "HS256"}),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
		// The securetoken keys are shared by every Firebase project.
		if v.projectID == "" {
			return nil, errors.New("RS256 token received but FIREBASE_PROJECT_ID is not configured")
		}
		if want := "https://securetoken.google.com/" + v.projectID; claims.Issuer != want {
			return nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
		}
		if !slices.Contains(claims.Audience, v.projectID) {
			return nil, errors.New("token audience does not match project")
		}
	}

	if claims.ExpiresAt == nil {
		return nil, errors.New("token has no expiry")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

func (v *Verifier) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if v.secret == nil {
			return nil, errors.New("HS256 token received but AUTH_JWT_SECRET is not configured")
		}
		return v.secret, nil
	case *jwt.SigningMethodRSA:
		if v.keys == nil {
			return nil, errors.New("RS256 token received but no key provider is configured")
		}
		return v.keys.KeyFunc(token)
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}
