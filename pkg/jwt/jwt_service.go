package jwt

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/FallenAngelllll/stellar-burgers/domain"
)

type (
	// JWTService inspects access tokens issued by the burger API. The
	// client never verifies signatures (the secret lives on the server);
	// it only needs the expiry claim to decide when to run the refresh
	// flow before an authorized call.
	JWTService interface {
		StripBearer(token string) string
		ExpiresAt(token string) (time.Time, error)
		IsExpired(token string) bool
	}

	jwtService struct {
		parser *jwt.Parser
		// leeway avoids sending a token that expires mid-flight.
		leeway time.Duration
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		parser: jwt.NewParser(),
		leeway: 10 * time.Second,
	}
}

// StripBearer removes the "Bearer " prefix the burger API puts in front
// of the access token it returns.
func (j *jwtService) StripBearer(token string) string {
	return strings.TrimPrefix(token, "Bearer ")
}

func (j *jwtService) ExpiresAt(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := j.parser.ParseUnverified(j.StripBearer(token), claims); err != nil {
		return time.Time{}, domain.ErrTokenInvalid
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, domain.ErrTokenInvalid
	}
	return claims.ExpiresAt.Time, nil
}

func (j *jwtService) IsExpired(token string) bool {
	expiresAt, err := j.ExpiresAt(token)
	if err != nil {
		return true
	}
	return time.Now().Add(j.leeway).After(expiresAt)
}
