package token

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer gravado nos tokens emitidos por este serviço.
const Issuer = "Catalogo-API"

// CustomClaims define as informações que armazenamos no JWT.
type CustomClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Service emite (com a chave privada) e valida (com a chave pública) tokens RS256.
type Service struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	expiry     time.Duration
}

// NewService cria o serviço de tokens. privateKey pode ser nil quando o
// processo só valida tokens (caso do servidor HTTP).
func NewService(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, expiry time.Duration) *Service {
	if publicKey == nil && privateKey != nil {
		publicKey = &privateKey.PublicKey
	}
	return &Service{privateKey: privateKey, publicKey: publicKey, expiry: expiry}
}

// GenerateToken cria um JWT RS256 para o subject informado.
func (s *Service) GenerateToken(subject, role string) (string, error) {
	if s.privateKey == nil {
		return "", errors.New("serviço de token sem chave privada")
	}

	now := time.Now()
	claims := CustomClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   subject,
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken valida assinatura, validade e issuer e devolve as claims.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	if s.publicKey == nil {
		return nil, errors.New("serviço de token sem chave pública")
	}

	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.publicKey, nil
	}, jwt.WithIssuer(Issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("token não é válido")
	}
	return claims, nil
}
