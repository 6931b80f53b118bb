package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	return storage
}

func TestSaveFile(t *testing.T) {
	storage := newTestStorage(t)
	header := makeFileHeader(t, "front-view.jpg", []byte("fake image bytes"))

	stored, err := storage.SaveFile(header, "hostels/1")
	require.NoError(t, err)

	assert.Equal(t, "front-view.jpg", stored.Filename)
	assert.Equal(t, "image/jpeg", stored.MimeType)
	assert.True(t, strings.HasPrefix(stored.Path, "hostels/1/"))
	assert.True(t, strings.HasSuffix(stored.Path, ".jpg"))
	assert.Equal(t, "http://localhost:8080/uploads/"+stored.Path, stored.URL)

	// The file actually exists on disk
	_, err = os.Stat(filepath.Join(storage.basePath, filepath.FromSlash(stored.Path)))
	assert.NoError(t, err)
}

func TestSaveFileWithoutSubdir(t *testing.T) {
	storage := newTestStorage(t)
	header := makeFileHeader(t, "photo.png", []byte("png bytes"))

	stored, err := storage.SaveFile(header, "")
	require.NoError(t, err)
	assert.NotContains(t, stored.Path, "/")
	assert.Equal(t, "image/png", stored.MimeType)
}

func TestSaveFileRejectsUnsupportedExtension(t *testing.T) {
	storage := newTestStorage(t)
	header := makeFileHeader(t, "malware.exe", []byte("nope"))

	_, err := storage.SaveFile(header, "hostels/1")
	assert.Error(t, err)
}

func TestSaveFileRejectsNilHeader(t *testing.T) {
	storage := newTestStorage(t)

	_, err := storage.SaveFile(nil, "hostels/1")
	assert.Error(t, err)
}

func TestDeleteFile(t *testing.T) {
	storage := newTestStorage(t)
	header := makeFileHeader(t, "to-delete.jpg", []byte("bytes"))

	stored, err := storage.SaveFile(header, "hostels/2")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(stored.Path))
	_, err = os.Stat(filepath.Join(storage.basePath, filepath.FromSlash(stored.Path)))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileMissingIsNoop(t *testing.T) {
	storage := newTestStorage(t)
	assert.NoError(t, storage.DeleteFile("hostels/1/never-existed.jpg"))
	assert.NoError(t, storage.DeleteFile(""))
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	storage := newTestStorage(t)

	assert.Error(t, storage.DeleteFile("../outside.txt"))
	assert.Error(t, storage.DeleteFile("hostels/../../outside.txt"))
}
