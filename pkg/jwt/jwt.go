package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. El middleware distingue expirado de malformado
// en el cuerpo de la respuesta 401.
var (
	ErrTokenExpirado = errors.New("token expirado")
	ErrTokenInvalido = errors.New("token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Subject lleva el ID del usuario; Email se añade para no consultar la DB en
// cada petición autenticada.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Generate genera un token JWT HS256 firmado con el ID del usuario como subject.
// La expiración es configurable en minutos (JWT_EXPIRATION_MINUTES).
func Generate(secret, userID, email, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el ID de usuario (subject) y el email.
// Devuelve ErrTokenExpirado si caducó y ErrTokenInvalido para firma
// incorrecta, formato corrupto o método de firma inesperado.
func Parse(secret, tokenString string) (userID, email string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrTokenExpirado
		}
		return "", "", ErrTokenInvalido
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", ErrTokenInvalido
	}
	return claims.Subject, claims.Email, nil
}
