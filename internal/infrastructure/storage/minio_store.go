// Package storage implementa el FileStore de documentos sobre un object
// store S3-compatible (MinIO).
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/fleetflow/fleetflow-api/internal/application/usecase"
	"github.com/fleetflow/fleetflow-api/pkg/config"
)

var _ usecase.FileStore = (*MinioStore)(nil)

// MinioStore guarda los archivos de documentos en un bucket S3-compatible.
type MinioStore struct {
	cl     *minio.Client
	bucket string
}

// NewMinioStore construye el cliente y asegura que el bucket existe.
func NewMinioStore(ctx context.Context, cfg config.StorageConfig) (*MinioStore, error) {
	cl, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente minio: %w", err)
	}

	exists, err := cl.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("comprobar bucket: %w", err)
	}
	if !exists {
		if err := cl.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("crear bucket: %w", err)
		}
	}
	return &MinioStore{cl: cl, bucket: cfg.Bucket}, nil
}

// Save sube el contenido bajo la clave dada.
func (s *MinioStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.cl.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("subir objeto %s: %w", key, err)
	}
	return nil
}

// Open abre el contenido de la clave dada y devuelve el lector, el tamaño y
// el content type.
func (s *MinioStore) Open(ctx context.Context, key string) (io.ReadCloser, int64, string, error) {
	info, err := s.cl.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, 0, "", fmt.Errorf("stat objeto %s: %w", key, err)
	}
	obj, err := s.cl.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, "", fmt.Errorf("abrir objeto %s: %w", key, err)
	}
	return obj, info.Size, info.ContentType, nil
}

// Remove elimina el objeto de la clave dada.
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	if err := s.cl.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("eliminar objeto %s: %w", key, err)
	}
	return nil
}
