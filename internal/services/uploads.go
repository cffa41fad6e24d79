package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/localnerve/innohub/internal/models"
	"github.com/localnerve/innohub/internal/storage"
	"github.com/localnerve/innohub/internal/store"
	"go.uber.org/zap"
)

// sniffBytes is how much of an upload is inspected to detect its type
const sniffBytes = 3072

// AllowedUploadTypes is the upload allow-list
var AllowedUploadTypes = []string{
	"application/pdf",
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/webp",
	"text/plain",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/zip",
}

func allowedType(mt *mimetype.MIME) bool {
	for _, t := range AllowedUploadTypes {
		if mt.Is(t) {
			return true
		}
	}
	return false
}

// SaveUpload stores a file after checking its sniffed type and size.
// The declared content type of the request is ignored.
func SaveUpload(ctx context.Context, s *store.Store, files *storage.FileStore, actor *Claims, fileName string, r io.Reader, maxBytes int64) (*models.Upload, error) {
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return nil, invalid("file", "is empty")
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !allowedType(mt) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), r), maxBytes+1)
	key, size, err := files.Save(body, mt.Extension())
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}
	if size > maxBytes {
		if rmErr := files.Remove(key); rmErr != nil {
			zap.L().Warn("failed to remove oversized upload", zap.String("key", key), zap.Error(rmErr))
		}
		return nil, ErrTooLarge
	}

	upload := &models.Upload{
		OwnerID:     actor.UserID,
		FileName:    cleanFileName(fileName),
		ContentType: mt.String(),
		Size:        size,
		StorageKey:  key,
	}
	if err := s.Uploads.Create(ctx, upload); err != nil {
		_ = files.Remove(key)
		return nil, err
	}
	return upload, nil
}

// OpenUpload returns an upload's metadata and content; the caller closes the file
func OpenUpload(ctx context.Context, s *store.Store, files *storage.FileStore, id string) (*models.Upload, *os.File, error) {
	upload, err := s.Uploads.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	f, err := files.Open(upload.StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		zap.L().Error("upload content missing", zap.String("upload", id), zap.String("key", upload.StorageKey))
		return nil, nil, store.ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return upload, f, nil
}

func cleanFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || r == '"' {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == "/" {
		return "upload"
	}
	if len(name) > 255 {
		// keep the extension end, starting on a character boundary
		start := len(name) - 255
		for start < len(name) && !utf8.RuneStart(name[start]) {
			start++
		}
		name = name[start:]
	}
	return name
}
