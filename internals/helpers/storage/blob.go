// Package storage keeps uploaded submission files (GCash receipts, attachments)
// on local disk or in Aliyun OSS.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"skyouth_backend/internals/configs"
)

// BlobService stores one object and returns its public URL.
type BlobService interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (publicURL string, err error)
}

// NewBlobServiceFromConfig picks the driver named by UPLOAD_DRIVER.
func NewBlobServiceFromConfig(cfg configs.Config) (BlobService, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.UploadDriver)) {
	case "oss":
		return NewOSSBlobService(cfg)
	case "", "local":
		return NewLocalBlobService(cfg.UploadDir, cfg.UploadPublicPrefix), nil
	default:
		return nil, fmt.Errorf("unknown UPLOAD_DRIVER %q", cfg.UploadDriver)
	}
}

/* =======================================================================
   Local disk
======================================================================= */

type LocalBlobService struct {
	Dir          string
	PublicPrefix string
}

func NewLocalBlobService(dir, publicPrefix string) *LocalBlobService {
	return &LocalBlobService{Dir: dir, PublicPrefix: "/" + strings.Trim(publicPrefix, "/")}
}

func (s *LocalBlobService) Put(ctx context.Context, key string, body []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key = strings.TrimLeft(filepath.ToSlash(filepath.Clean("/"+key)), "/")
	if key == "" {
		return "", fmt.Errorf("empty key")
	}

	dst := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.PublicPrefix + "/" + key, nil
}

/* =======================================================================
   Aliyun OSS
======================================================================= */

type OSSBlobService struct {
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
	Prefix     string
}

func NewOSSBlobService(cfg configs.Config) (*OSSBlobService, error) {
	if cfg.OSSEndpoint == "" || cfg.OSSAccessKey == "" || cfg.OSSSecretKey == "" || cfg.OSSBucket == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if cfg.OSSSecurityToken != "" {
		client, err = oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey, oss.SecurityToken(cfg.OSSSecurityToken))
	} else {
		client, err = oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	log.Printf("[OSS] uploads go to bucket %s", cfg.OSSBucket)

	return &OSSBlobService{
		Bucket:     bkt,
		Endpoint:   cfg.OSSEndpoint,
		BucketName: cfg.OSSBucket,
		Prefix:     strings.Trim(cfg.OSSPrefix, "/"),
	}, nil
}

func (s *OSSBlobService) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key")
	}
	if s.Prefix != "" {
		key = s.Prefix + "/" + strings.TrimLeft(key, "/")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	if err := s.Bucket.PutObject(key, bytes.NewReader(body), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSBlobService) PublicURL(key string) string {
	end := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, end, key)
}
