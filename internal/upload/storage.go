package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Storage envia arquivos de formulários e registros de qualidade para o
// bucket e devolve a URL pública do objeto.
type Storage interface {
	Enviar(ctx context.Context, dados []byte, nomeOriginal, pasta string) (string, string, error)
}

type storageS3 struct {
	bucket string
	client *s3.Client
}

func NewStorage() (Storage, error) {
	bucket := os.Getenv("UPLOAD_BUCKET")
	if bucket == "" {
		return nil, errors.New("UPLOAD_BUCKET não configurado")
	}
	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}
	return &storageS3{
		bucket: bucket,
		client: s3.NewFromConfig(cfg),
	}, nil
}

// Enviar grava o arquivo com um prefixo aleatório para nunca sobrescrever
// uploads de mesmo nome. Retorna o nome gerado e a URL do objeto.
func (s *storageS3) Enviar(ctx context.Context, dados []byte, nomeOriginal, pasta string) (string, string, error) {
	if nomeOriginal == "" {
		return "", "", errors.New("nome do arquivo vazio")
	}
	if pasta == "" {
		pasta = "geral"
	}

	nome := uuid.NewString() + "-" + filepath.Base(nomeOriginal)
	chave := pasta + "/" + nome

	tipoConteudo := mime.TypeByExtension(filepath.Ext(nomeOriginal))
	if tipoConteudo == "" {
		tipoConteudo = http.DetectContentType(dados)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(chave),
		Body:        bytes.NewReader(dados),
		ContentType: &tipoConteudo,
	})
	if err != nil {
		return "", "", err
	}

	url := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, chave)
	return nome, url, nil
}
