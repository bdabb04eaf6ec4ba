package token

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Chaves de 1024 bits mantêm os testes rápidos.
func newTestKeys(t *testing.T) *Service {
	t.Helper()
	key, err := GenerateKeyPair(1024)
	require.NoError(t, err)
	return NewService(key, nil, time.Hour)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestKeys(t)

	tokenString, err := svc.GenerateToken("frontend", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "frontend", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestValidate_WrongKey(t *testing.T) {
	signer := newTestKeys(t)
	other := newTestKeys(t)

	tokenString, err := signer.GenerateToken("frontend", "")
	require.NoError(t, err)

	_, err = other.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	key, err := GenerateKeyPair(1024)
	require.NoError(t, err)
	svc := NewService(key, nil, -time.Minute)

	tokenString, err := svc.GenerateToken("frontend", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestGenerate_WithoutPrivateKey(t *testing.T) {
	signer := newTestKeys(t)
	verifier := NewService(nil, &signer.privateKey.PublicKey, time.Hour)

	_, err := verifier.GenerateToken("x", "")
	assert.Error(t, err)
}

func TestPEMRoundTrip(t *testing.T) {
	key, err := GenerateKeyPair(1024)
	require.NoError(t, err)
	dir := t.TempDir()

	pubPEM, err := EncodePublicKeyPEM(&key.PublicKey)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.pem"), pubPEM, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.pem"), EncodePrivateKeyPEM(key), 0o600))

	pub, err := LoadPublicKeyFile(filepath.Join(dir, "public.pem"))
	require.NoError(t, err)
	priv, err := LoadPrivateKeyFile(filepath.Join(dir, "private.pem"))
	require.NoError(t, err)

	assert.True(t, key.PublicKey.Equal(pub))
	assert.True(t, key.Equal(priv))

	_, err = LoadPublicKeyFile(filepath.Join(dir, "missing.pem"))
	assert.Error(t, err)
}
