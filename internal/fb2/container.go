package fb2

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

var (
	ErrNoBookEntry     = errors.New("no .fb2 entry found in archive")
	ErrNotFictionBook  = errors.New("root element is not FictionBook")
	ErrMissingMetadata = errors.New("description element not found")
)

// zipMagic is the local file header signature that starts every zip archive.
var zipMagic = []byte("PK\x03\x04")

// readBook reads the FB2 XML stored at path. Zip archives are unpacked and
// their first *.fb2 entry is returned.
func readBook(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read book: %w", err)
	}

	if !bytes.HasPrefix(data, zipMagic) {
		return data, nil
	}
	return readZipEntry(data)
}

// readZipEntry returns the content of the first .fb2 file in the archive.
func readZipEntry(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := normalizePath(f.Name)
		if !strings.EqualFold(path.Ext(name), Extension) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer rc.Close()

		return io.ReadAll(rc)
	}

	return nil, ErrNoBookEntry
}

// normalizePath normalizes archive entry paths (removes ./ prefix)
func normalizePath(p string) string {
	return strings.TrimPrefix(p, "./")
}
