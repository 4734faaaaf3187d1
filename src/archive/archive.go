package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	pg "github.com/vientorepublic/docker-volume-backup/src/util/progress"
)

// Entry describes one file inside a backup archive.
type Entry struct {
	Name string
	Size int64
	Dir  bool
}

// Inspect reads the whole archive at path and returns its entries. It is the
// syntax check restore runs before any container is started: a file that is
// not a gzip-compressed tar fails here. When progressOut is non-nil, byte
// progress is reported while scanning.
func Inspect(path string, progressOut io.Writer) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if progressOut != nil {
		if fi, err := f.Stat(); err == nil {
			r = pg.NewReader(f, fi.Size(), "scan", progressOut)
		}
	}

	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s is not a gzip archive: %w", path, err)
	}
	defer gz.Close()

	var entries []Entry
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s is not a valid tar archive: %w", path, err)
		}
		entries = append(entries, Entry{
			Name: hdr.Name,
			Size: hdr.Size,
			Dir:  hdr.Typeflag == tar.TypeDir,
		})
	}
	return entries, nil
}

// FileCount returns the number of non-directory entries.
func FileCount(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if !e.Dir {
			n++
		}
	}
	return n
}

// PrintEntries writes up to limit entry names to w, then a single line
// summarizing how many more the archive holds.
func PrintEntries(w io.Writer, entries []Entry, limit int) {
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	for _, e := range entries[:limit] {
		fmt.Fprintln(w, e.Name)
	}
	if rest := len(entries) - limit; rest > 0 {
		fmt.Fprintf(w, "... and %d more entries\n", rest)
	}
}
