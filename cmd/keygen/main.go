// keygen gera o par de chaves RS256 usado pelas rotas de escrita e emite um token de acesso.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"catalogo/internal/pkg/logger"
	"catalogo/internal/pkg/token"
)

func main() {
	var (
		outDir string
		bits   int
		sub    string
		role   string
		expiry time.Duration
		reuse  bool
	)
	flag.StringVar(&outDir, "out", "./keys", "diretório de saída para private.pem e public.pem")
	flag.IntVar(&bits, "bits", token.DefaultKeyBits, "tamanho da chave RSA")
	flag.StringVar(&sub, "sub", "frontend", "subject do token emitido")
	flag.StringVar(&role, "role", "writer", "role do token emitido")
	flag.DurationVar(&expiry, "expiry", 24*time.Hour, "validade do token")
	flag.BoolVar(&reuse, "reuse", false, "reutiliza private.pem existente em -out")
	flag.Parse()

	log := logger.NewLogger("info")
	privPath := filepath.Join(outDir, "private.pem")
	pubPath := filepath.Join(outDir, "public.pem")

	var svc *token.Service
	if reuse {
		priv, err := token.LoadPrivateKeyFile(privPath)
		if err != nil {
			log.Fatal("Falha ao carregar a chave privada.", err)
		}
		svc = token.NewService(priv, nil, expiry)
	} else {
		priv, err := token.GenerateKeyPair(bits)
		if err != nil {
			log.Fatal("Falha ao gerar o par de chaves.", err)
		}
		pubPEM, err := token.EncodePublicKeyPEM(&priv.PublicKey)
		if err != nil {
			log.Fatal("Falha ao codificar a chave pública.", err)
		}
		if err := os.MkdirAll(outDir, 0o700); err != nil {
			log.Fatal("Falha ao criar o diretório de saída.", err)
		}
		if err := os.WriteFile(privPath, token.EncodePrivateKeyPEM(priv), 0o600); err != nil {
			log.Fatal("Falha ao gravar a chave privada.", err)
		}
		if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
			log.Fatal("Falha ao gravar a chave pública.", err)
		}
		log.Info("Par de chaves gerado.", map[string]interface{}{"private": privPath, "public": pubPath})
		svc = token.NewService(priv, nil, expiry)
	}

	signed, err := svc.GenerateToken(sub, role)
	if err != nil {
		log.Fatal("Falha ao emitir o token.", err)
	}
	fmt.Println(signed)
}
