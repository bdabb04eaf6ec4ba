package database

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Credentials é o formato do segredo de banco no Secrets Manager.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SecretGetter é o subconjunto do cliente do Secrets Manager usado aqui.
type SecretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// newSecretGetter é substituível nos testes.
var newSecretGetter = func(ctx context.Context) (SecretGetter, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar configuração AWS: %w", err)
	}
	return secretsmanager.NewFromConfig(cfg), nil
}

// RetrieveCredentials lê usuário e senha do segredo informado.
func RetrieveCredentials(ctx context.Context, client SecretGetter, secretID string) (Credentials, error) {
	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("falha ao ler o segredo %s: %w", secretID, err)
	}
	if result.SecretString == nil {
		return Credentials{}, fmt.Errorf("segredo %s sem SecretString", secretID)
	}

	var creds Credentials
	if err := json.Unmarshal([]byte(*result.SecretString), &creds); err != nil {
		return Credentials{}, fmt.Errorf("segredo %s com formato inválido: %w", secretID, err)
	}
	return creds, nil
}

func withSecretCredentials(ctx context.Context, dsn, secretID string) (string, error) {
	client, err := newSecretGetter(ctx)
	if err != nil {
		return "", err
	}
	creds, err := RetrieveCredentials(ctx, client, secretID)
	if err != nil {
		return "", err
	}
	return InjectCredentials(dsn, creds)
}

// InjectCredentials aplica usuário/senha a um DSN em formato URL ou chave=valor.
func InjectCredentials(dsn string, creds Credentials) (string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("DATABASE_URL inválido: %w", err)
		}
		u.User = url.UserPassword(creds.Username, creds.Password)
		return u.String(), nil
	}
	return fmt.Sprintf("%s user=%s password=%s", strings.TrimSpace(dsn), quoteKV(creds.Username), quoteKV(creds.Password)), nil
}

func quoteKV(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
