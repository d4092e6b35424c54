package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/loopline/loopline-services-gateway/apperrors"
	"github.com/loopline/loopline-services-gateway/jwtauth"
)

// JWTMiddleware authenticates requests by the HTTP-only authToken cookie.
func JWTMiddleware(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie("authToken")
		if err != nil || token == "" {
			apperrors.Unauthorized(ctx, "unauthorized")
			ctx.Abort()
			return
		}

		parsedToken, err := jwt.ParseWithClaims(token, &jwtauth.JWTClaims{}, func(t *jwt.Token) (any, error) {
			return []byte(secretKey), nil
		})
		if err != nil || !parsedToken.Valid {
			apperrors.Unauthorized(ctx, "invalid_token")
			ctx.Abort()
			return
		}

		claims := parsedToken.Claims.(*jwtauth.JWTClaims)
		if claims.Type != "access" {
			apperrors.Unauthorized(ctx, "invalid token type")
			ctx.Abort()
			return
		}

		ctx.Set("email", claims.Subject)
		ctx.Next()
	}
}
