package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type userJWT struct {
	Audience  string  `json:"aud"`
	Email     *string `json:"email"`
	ExpiresAt int64   `json:"exp"`
	IssuedAt  int64   `json:"iat"`
	Issuer    string  `json:"iss"`
	Role      string  `json:"role"`
	Subject   string  `json:"sub"`
}

// parseJWT accepts HS256 tokens signed with the shared secret
func parseJWT(jwtStr string, decodeToken string) (*userJWT, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("error marshalling claims: %w", err)
	}

	var parsedJWT userJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("error unmarshalling into jwt struct: %w", err)
	}

	if parsedJWT.ExpiresAt != 0 && time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}
	if _, err := uuid.Parse(parsedJWT.Subject); err != nil {
		return nil, fmt.Errorf("jwt subject is not a user id: %w", err)
	}

	return &parsedJWT, nil
}

func (m ApiHandler) authMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenStr == "" {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, http.StatusUnauthorized)
		return
	}

	token, err := parseJWT(tokenStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}

	c.Set("userAccountID", token.Subject)
	c.Next()
}

func getUserAccountID(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}
	return uuid.Parse(userAccountIDStr)
}

// mustUserAccountID writes a 401 and reports false when the request has no
// user
func mustUserAccountID(c *gin.Context) (uuid.UUID, bool) {
	userAccountID, err := getUserAccountID(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userAccountID, true
}
