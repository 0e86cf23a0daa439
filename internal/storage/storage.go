package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const thumbnailWidth = 480

// Store saves uploaded gallery and couple photos to local disk and hands back
// the public URL they will be served under.
type Store struct {
	dir     string
	baseURL string
	log     zerolog.Logger
}

func New(dir, baseURL string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Store{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger.With().Str("component", "storage").Logger(),
	}, nil
}

// SaveImage stores one uploaded image under a unique name and writes a
// resized thumbnail next to it. It returns the public URL of the original.
func (s *Store) SaveImage(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	filename := UniqueFilename(fileHeader.Filename)
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	if err := s.writeThumbnail(path, filename); err != nil {
		// The original is already saved; a failed thumbnail only degrades
		// the gallery grid.
		s.log.Warn().Err(err).Str("file", filename).Msg("thumbnail generation failed")
	}

	return s.baseURL + "/uploads/" + filename, nil
}

func (s *Store) writeThumbnail(path, filename string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	thumbPath := filepath.Join(s.dir, ThumbnailName(filename))
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return nil
}

// Dir returns the on-disk directory uploads are served from.
func (s *Store) Dir() string {
	return s.dir
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename strips everything but letters, digits, dot, dash and
// underscore from an uploaded filename.
func SanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// UniqueFilename prefixes the sanitized original name with the upload date
// and a fresh uuid so concurrent uploads never collide.
func UniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.NewString(), SanitizeFilename(originalFilename))
}

// ThumbnailName derives the sibling thumbnail filename, always a jpg.
func ThumbnailName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_thumb.jpg"
}
