package structure

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileOps copies and rewrites files from a template filesystem into a target
// filesystem.
type FileOps struct {
	Src afero.Fs
	Dst afero.Fs
}

// EnsureDir creates dir and any missing parents in the target.
func (o FileOps) EnsureDir(dir string) error {
	if err := o.Dst.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// Copy copies each source (a file or a directory tree) into destination. A
// directory source copies its contents; a file source is written to
// destination itself. It returns the written target paths.
func (o FileOps) Copy(destination string, sources ...string) ([]string, error) {
	var written []string
	for _, src := range sources {
		info, err := o.Src.Stat(src)
		if err != nil {
			return written, fmt.Errorf("reading template %s: %w", src, err)
		}

		if !info.IsDir() {
			if err := o.copyFile(src, destination); err != nil {
				return written, err
			}
			written = append(written, destination)
			continue
		}

		files, err := o.copyDir(src, destination)
		written = append(written, files...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (o FileOps) copyDir(src, destination string) ([]string, error) {
	var written []string
	err := afero.Walk(o.Src, src, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel := relTo(src, p)
		target := destination
		if rel != "." {
			target = path.Join(destination, rel)
		}

		if info.IsDir() {
			return o.EnsureDir(target)
		}
		if err := o.copyFile(p, target); err != nil {
			return err
		}
		written = append(written, target)
		return nil
	})
	return written, err
}

func (o FileOps) copyFile(src, dst string) error {
	content, err := afero.ReadFile(o.Src, src)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", src, err)
	}
	if err := o.EnsureDir(path.Dir(dst)); err != nil {
		return err
	}
	if err := afero.WriteFile(o.Dst, dst, content, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// WriteIfExists replaces the content of an existing target file. It reports
// whether the file existed.
func (o FileOps) WriteIfExists(file string, content []byte) (bool, error) {
	ok, err := afero.Exists(o.Dst, file)
	if err != nil || !ok {
		return false, err
	}
	if err := afero.WriteFile(o.Dst, file, content, filePerm); err != nil {
		return false, fmt.Errorf("writing %s: %w", file, err)
	}
	return true, nil
}

// ReadOrEmpty returns the content of a target file, or nil when it does not
// exist.
func (o FileOps) ReadOrEmpty(file string) ([]byte, error) {
	content, err := afero.ReadFile(o.Dst, file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return content, err
}

// DeleteIfExists removes a target file or directory tree. Missing paths are
// not an error.
func (o FileOps) DeleteIfExists(p string) error {
	ok, err := afero.Exists(o.Dst, p)
	if err != nil || !ok {
		return err
	}
	if err := o.Dst.RemoveAll(p); err != nil {
		return fmt.Errorf("removing %s: %w", p, err)
	}
	return nil
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, string(os.PathSeparator), "/")
}
