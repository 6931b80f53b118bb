package filestorage

import "mime/multipart"

// StoredFile describes where an uploaded file landed on disk and how
// clients can reach it over HTTP.
type StoredFile struct {
	Path     string // path relative to the storage root, e.g. "hostels/3/abc.jpg"
	URL      string // public URL derived from the server base URL
	Filename string // original filename as uploaded
	Size     int64
	MimeType string
}

// FileStorage is the interface for persisting uploaded files.
type FileStorage interface {
	// SaveFile stores the uploaded file under the given subdirectory.
	SaveFile(fileHeader *multipart.FileHeader, subDir string) (*StoredFile, error)

	// DeleteFile removes a previously stored file. Deleting a missing
	// file is not an error.
	DeleteFile(relativePath string) error
}
