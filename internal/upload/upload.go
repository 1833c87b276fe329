package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gamehub/backend/internal/apperror"
	"gamehub/backend/internal/logger"

	"github.com/rs/xid"
)

const (
	// MaxImageSize is the per-file ceiling for cover images and screenshots.
	MaxImageSize = 5 << 20 // 5 MB
	// MaxArchiveSize is the ceiling for the packaged game archive.
	MaxArchiveSize = 50 << 20 // 50 MB
	// MaxScreenshots caps the screenshots field per game.
	MaxScreenshots = 5

	gamesDir       = "games"
	screenshotsDir = "screenshots"
	gameFilesDir   = "gamefiles"
)

// allowedImageTypes maps accepted image MIME types to their extensions.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// Pipeline writes accepted multipart files under content-type-specific
// subdirectories of its base dir with collision-free generated names.
type Pipeline struct {
	baseDir string
}

// NewPipeline ensures the upload directory tree exists.
func NewPipeline(baseDir string) (*Pipeline, error) {
	for _, sub := range []string{gamesDir, screenshotsDir, gameFilesDir} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &Pipeline{baseDir: baseDir}, nil
}

// BaseDir returns the root of the upload tree.
func (p *Pipeline) BaseDir() string {
	return p.baseDir
}

// Resolve maps a stored relative path ("/uploads/games/x.png") back to the
// location on disk.
func (p *Pipeline) Resolve(relPath string) string {
	return filepath.Join(p.baseDir, strings.TrimPrefix(relPath, "/uploads/"))
}

// Remove deletes a previously stored file, best-effort. Failures are logged,
// never propagated: a stale file on disk must not fail the request.
func (p *Pipeline) Remove(relPath string) {
	if relPath == "" || strings.HasPrefix(relPath, "http") {
		return
	}
	if err := os.Remove(p.Resolve(relPath)); err != nil && !os.IsNotExist(err) {
		logger.Log.Warnw("failed to remove uploaded file", "path", relPath, "error", err)
	}
}

// Session tracks the files written for a single request so that an abort can
// clean up siblings that were already on disk.
type Session struct {
	p       *Pipeline
	written []string
}

// Begin starts a write session for one request.
func (p *Pipeline) Begin() *Session {
	return &Session{p: p}
}

// SaveImage validates and stores a cover image, returning its relative path.
func (s *Session) SaveImage(fh *multipart.FileHeader) (string, error) {
	if err := validateImage(fh); err != nil {
		return "", err
	}
	return s.save(fh, gamesDir)
}

// SaveScreenshot validates and stores one screenshot.
func (s *Session) SaveScreenshot(fh *multipart.FileHeader) (string, error) {
	if err := validateImage(fh); err != nil {
		return "", err
	}
	return s.save(fh, screenshotsDir)
}

// SaveArchive validates and stores the packaged game archive.
func (s *Session) SaveArchive(fh *multipart.FileHeader) (string, error) {
	if err := ValidateArchive(fh); err != nil {
		return "", err
	}
	return s.save(fh, gameFilesDir)
}

// Cleanup removes every file this session wrote. Call it when the request
// aborts after a partial write; it is a no-op after a fully successful save.
func (s *Session) Cleanup() {
	for _, rel := range s.written {
		s.p.Remove(rel)
	}
	s.written = nil
}

func (s *Session) save(fh *multipart.FileHeader, subdir string) (string, error) {
	name := generateFilename(fh.Filename)
	dst := filepath.Join(s.p.baseDir, subdir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}

	rel := "/uploads/" + subdir + "/" + name
	s.written = append(s.written, rel)
	return rel, nil
}

func validateImage(fh *multipart.FileHeader) error {
	if fh == nil {
		return apperror.Validation("Image file is required")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType := fh.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] && !allowedImageExts[ext] {
		return apperror.Validation("Invalid file type. Only images are allowed")
	}
	if fh.Size > MaxImageSize {
		return apperror.TooLarge("Image exceeds the 5 MB limit")
	}
	return nil
}

// ValidateArchive checks the packaged game file: the name must end in .zip
// (suffix check, no content sniffing) and the size must be under the ceiling.
func ValidateArchive(fh *multipart.FileHeader) error {
	if fh == nil {
		return apperror.Validation("Game file is required")
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".zip") {
		return apperror.Validation("Invalid file type. Only .zip archives are allowed")
	}
	if fh.Size > MaxArchiveSize {
		return apperror.TooLarge("Archive exceeds the 50 MB limit")
	}
	return nil
}

// generateFilename builds a collision-free name keeping the original extension.
func generateFilename(original string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), xid.New().String(), strings.ToLower(filepath.Ext(original)))
}
