// Package source models input image files: an immutable reference to a
// file's name, size, declared media type, and on-demand byte access.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File is an immutable input image reference. Bytes are read on demand
// via Open; every reader obtained from Open must be closed by the caller
// on all exit paths.
type File struct {
	// Name is the file's base name, extension included.
	Name string
	// Size is the declared byte length of the original content.
	Size int64
	// MediaType is the declared media type. May be empty or unreliable;
	// consumers must tolerate undecodable content.
	MediaType string

	open func() (io.ReadCloser, error)
}

// Open returns a fresh reader over the file's bytes.
func (f *File) Open() (io.ReadCloser, error) {
	return f.open()
}

// ReadAll reads the full content, releasing the underlying reader on
// every path.
func (f *File) ReadAll() ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// FromPath builds a File backed by a path on disk.
func FromPath(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return &File{
		Name:      filepath.Base(path),
		Size:      info.Size(),
		MediaType: MediaTypeForName(path),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// FromBytes builds an in-memory File.
func FromBytes(name, mediaType string, data []byte) *File {
	return &File{
		Name:      name,
		Size:      int64(len(data)),
		MediaType: mediaType,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// imageExtensions lists recognized image file extensions.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
	".heic": true,
	".heif": true,
}

// mediaTypes maps extensions to declared media types.
var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".heic": "image/heic",
	".heif": "image/heif",
}

// MediaTypeForName returns the declared media type for a filename, or ""
// when the extension is unknown.
func MediaTypeForName(name string) string {
	return mediaTypes[strings.ToLower(filepath.Ext(name))]
}

// IsImageName reports whether a filename carries a recognized image
// extension.
func IsImageName(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Scan resolves a list of file and directory arguments into input files.
// Directories are walked recursively; non-image entries and hidden
// directories are skipped. Order is deterministic: arguments in the
// given order, directory contents in walk order.
func Scan(args []string) ([]*File, error) {
	var files []*File
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			f, err := FromPath(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
			continue
		}

		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				// Skip hidden directories.
				if strings.HasPrefix(info.Name(), ".") && path != arg {
					return filepath.SkipDir
				}
				return nil
			}
			if !IsImageName(path) {
				return nil
			}
			f, ferr := FromPath(path)
			if ferr != nil {
				return ferr
			}
			files = append(files, f)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", arg, err)
		}
	}
	return files, nil
}
