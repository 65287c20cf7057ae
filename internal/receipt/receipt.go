// Package receipt issues signed tokens referencing a computed evaluation
// result. The service keeps no state between requests: a client that wants
// a chart, a PDF report or a CRM submission for an earlier evaluation hands
// the receipt back instead of re-sending fifty answers, and the result is
// rebuilt deterministically from the embedded scores.
package receipt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"evalkit/internal/domain/evalkit"
)

const DefaultTTL = 24 * time.Hour

type Claims struct {
	EvaluationID string         `json:"eid"`
	Role         string         `json:"role"`
	Scores       evalkit.Scores `json:"scores"`
	jwt.RegisteredClaims
}

// Sign issues a receipt for a result. The returned evaluation id also goes
// into the score response so logs and submissions can be correlated.
// A zero ttl means DefaultTTL; a negative ttl is honored as-is and yields an
// already-expired token.
func Sign(secret string, result evalkit.EvaluationResult, ttl time.Duration) (token, evaluationID string, err error) {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	evaluationID = uuid.NewString()
	claims := Claims{
		EvaluationID: evaluationID,
		Role:         result.Role,
		Scores:       result.Scores,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	return token, evaluationID, err
}

// Parse verifies a receipt and rebuilds the full evaluation result from the
// embedded role and scores. Any tampering, expiry or signature mismatch is
// reported as a ValidationError so handlers map it to a client error.
func Parse(secret, tokenString string) (evalkit.EvaluationResult, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return evalkit.EvaluationResult{}, "", &evalkit.ValidationError{Field: "receipt", Reason: "invalid or expired receipt"}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return evalkit.EvaluationResult{}, "", &evalkit.ValidationError{Field: "receipt", Reason: "invalid receipt"}
	}

	result, err := evalkit.DeriveResult(claims.Role, claims.Scores)
	if err != nil {
		return evalkit.EvaluationResult{}, "", err
	}
	return result, claims.EvaluationID, nil
}
