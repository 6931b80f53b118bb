package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arjun/hostelmate/internal/pkg/apperrors"
	"github.com/arjun/hostelmate/internal/pkg/logger"
)

// allowedImageExtensions lists the upload extensions accepted for hostel
// images, keyed by lowercase extension including the dot.
var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// MaxImageSize is the upload ceiling for a single image file.
const MaxImageSize = 5 << 20 // 5 MiB

// LocalStorage saves files under a directory on the local filesystem.
type LocalStorage struct {
	basePath string // root directory for stored files
	baseURL  string // prefix for generated public URLs, e.g. http://host/uploads
}

// NewLocalStorage creates a LocalStorage rooted at basePath. The directory
// is created if it does not exist. baseURL is prepended to returned URLs.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile stores the uploaded file under basePath/subDir using a random
// filename, keeping the original extension. Non-image extensions and files
// over MaxImageSize are rejected.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subDir string) (*StoredFile, error) {
	if fileHeader == nil {
		return nil, apperrors.NewBadRequestError("no file uploaded")
	}
	if fileHeader.Size > MaxImageSize {
		return nil, apperrors.NewBadRequestError("file exceeds the 5MB upload limit")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	mimeType, ok := allowedImageExtensions[ext]
	if !ok {
		return nil, apperrors.NewBadRequestError("unsupported file type, expected jpg, png or webp")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dirPath := ls.basePath
	if subDir != "" {
		dirPath = filepath.Join(ls.basePath, subDir)
		if err := os.MkdirAll(dirPath, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	uniqueName := uuid.New().String() + ext
	dstPath := filepath.Join(dirPath, uniqueName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	relPath := uniqueName
	if subDir != "" {
		relPath = path.Join(subDir, uniqueName)
	}

	stored := &StoredFile{
		Path:     relPath,
		URL:      ls.baseURL + "/" + relPath,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		MimeType: mimeType,
	}

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("saved_as", relPath).
		Msg("File saved successfully")
	return stored, nil
}

// DeleteFile removes the file at the given path relative to the storage
// root. A missing file is treated as already deleted.
func (ls *LocalStorage) DeleteFile(relativePath string) error {
	if relativePath == "" {
		return nil
	}

	clean := filepath.Clean(relativePath)
	if clean == "." || clean == string(filepath.Separator) || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("invalid file path: %s", relativePath)
	}

	physicalPath := filepath.Join(ls.basePath, clean)
	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
