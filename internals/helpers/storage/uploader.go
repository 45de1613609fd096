package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"skyouth_backend/internals/configs"
)

// Uploader turns multipart files into stored objects. Images are re-encoded to WebP.
type Uploader struct {
	blobs    BlobService
	webp     WebPOptions
	maxBytes int64
	now      func() time.Time
}

func NewUploader(blobs BlobService, cfg configs.Config) *Uploader {
	return &Uploader{
		blobs: blobs,
		webp: WebPOptions{
			MaxW:    cfg.ImageMaxW,
			MaxH:    cfg.ImageMaxH,
			Quality: float32(cfg.ImageQuality),
		},
		maxBytes: cfg.UploadMaxBytes,
		now:      time.Now,
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(name string) string {
	name = unsafeChars.ReplaceAllString(filepath.Base(name), "_")
	if name == "" || name == "." || name == "_" {
		return "file"
	}
	return name
}

// objectKey builds "{dir}/{yyyymmdd}-{uuid}-{name}".
func (u *Uploader) objectKey(dir, filename string) string {
	return fmt.Sprintf("%s/%s-%s-%s", strings.Trim(dir, "/"), u.now().Format("20060102"), uuid.New().String(), sanitizeFilename(filename))
}

// Save stores one uploaded file under dir and returns its public URL.
func (u *Uploader) Save(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("nil file header")
	}
	if u.maxBytes > 0 && fh.Size > u.maxBytes {
		return "", fmt.Errorf("file %s too large (max %d bytes)", fh.Filename, u.maxBytes)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return u.SaveBytes(ctx, dir, fh.Filename, all)
}

// SaveBytes is Save for content already in memory.
func (u *Uploader) SaveBytes(ctx context.Context, dir, filename string, all []byte) (string, error) {
	if len(all) == 0 {
		return "", fmt.Errorf("file %s is empty", filename)
	}

	head := all
	if len(head) > 512 {
		head = head[:512]
	}

	if IsImage(head, filename) {
		webpData, err := ConvertToWebP(all, filename, u.webp)
		if err != nil {
			return "", err
		}
		base := strings.TrimSuffix(filename, filepath.Ext(filename))
		return u.blobs.Put(ctx, u.objectKey(dir, base+".webp"), webpData, "image/webp")
	}

	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if ct == "" {
		ct = http.DetectContentType(head)
	}
	return u.blobs.Put(ctx, u.objectKey(dir, filename), all, ct)
}

// SaveForm stores every file of a multipart form, keyed by its form field name.
// When a field carries several files the URLs are joined with ", ".
func (u *Uploader) SaveForm(ctx context.Context, dir string, form *multipart.Form) (map[string]string, error) {
	out := map[string]string{}
	if form == nil {
		return out, nil
	}
	for field, headers := range form.File {
		key := strings.TrimSuffix(field, "[]")
		urls := make([]string, 0, len(headers))
		for _, fh := range headers {
			url, err := u.Save(ctx, dir, fh)
			if err != nil {
				return nil, fmt.Errorf("upload %s: %w", key, err)
			}
			urls = append(urls, url)
		}
		if len(urls) > 0 {
			out[key] = strings.Join(urls, ", ")
		}
	}
	return out, nil
}
