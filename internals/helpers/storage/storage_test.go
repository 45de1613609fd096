package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"skyouth_backend/internals/configs"
)

func newTestUploader(t *testing.T) (*Uploader, string) {
	t.Helper()
	dir := t.TempDir()
	u := NewUploader(NewLocalBlobService(dir, "uploads"), configs.Config{
		ImageMaxW:      64,
		ImageMaxH:      64,
		ImageQuality:   75,
		UploadMaxBytes: 1 << 20,
	})
	u.now = func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) }
	return u, dir
}

func TestSaveBytes_RawFile(t *testing.T) {
	t.Parallel()

	u, dir := newTestUploader(t)
	url, err := u.SaveBytes(context.Background(), "submissions", "my receipt (1).pdf", []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/submissions/20240615-") || !strings.HasSuffix(url, "-my_receipt_1_.pdf") {
		t.Fatalf("url = %q", url)
	}

	stored := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(url, "/uploads/")))
	got, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("read stored: %v", err)
	}
	if string(got) != "%PDF-1.4 fake" {
		t.Fatalf("stored = %q", got)
	}
}

func TestSaveBytes_ImageBecomesWebP(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	u, dir := newTestUploader(t)
	url, err := u.SaveBytes(context.Background(), "receipts", "gcash.png", buf.Bytes())
	if err != nil {
		t.Fatalf("SaveBytes: %v", err)
	}
	if !strings.HasSuffix(url, "-gcash.webp") {
		t.Fatalf("url = %q", url)
	}

	stored, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(url, "/uploads/"))))
	if err != nil {
		t.Fatalf("read stored: %v", err)
	}
	decoded, err := decodeImage(stored, "x.webp")
	if err != nil {
		t.Fatalf("decode stored webp: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("stored size = %dx%d, want 64x32", b.Dx(), b.Dy())
	}
}

func TestSaveBytes_Empty(t *testing.T) {
	t.Parallel()

	u, _ := newTestUploader(t)
	if _, err := u.SaveBytes(context.Background(), "x", "a.txt", nil); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestLocalBlobService_KeepsKeysInsideDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewLocalBlobService(dir, "/uploads/")
	url, err := s.Put(context.Background(), "../../etc/passwd", []byte("x"), "text/plain")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if url != "/uploads/etc/passwd" {
		t.Fatalf("url = %q", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "etc", "passwd")); err != nil {
		t.Fatalf("file not written inside dir: %v", err)
	}
}
