package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// TimestampLayout is the fixed-width local timestamp embedded in default
// backup filenames: 4-digit year, then 2-digit month, day, hour, minute,
// second.
const TimestampLayout = "20060102_150405"

// backupFileRe matches the default filename convention
// <volume>_backup_<YYYYMMDD_HHMMSS>.tar.gz.
var backupFileRe = regexp.MustCompile(`^(.+)_backup_(\d{8}_\d{6})\.tar\.gz$`)

// Entry is one backup archive discovered on disk.
type Entry struct {
	Volume    string    `json:"volume"`
	Timestamp time.Time `json:"timestamp"`
	File      string    `json:"file"`
	Size      int64     `json:"size"`
}

// BackupFileName returns the default output filename for a volume backup
// taken at the given local time.
func BackupFileName(volume string, now time.Time) string {
	return fmt.Sprintf("%s_backup_%s.tar.gz", volume, now.Format(TimestampLayout))
}

// Scan lists the backup archives in dir that follow the default filename
// convention, newest first. Files with other names are ignored.
func Scan(dir string) ([]Entry, error) {
	dents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading backup directory: %w", err)
	}
	var out []Entry
	for _, d := range dents {
		if d.IsDir() {
			continue
		}
		m := backupFileRe.FindStringSubmatch(d.Name())
		if m == nil {
			continue
		}
		ts, err := time.ParseInLocation(TimestampLayout, m[2], time.Local)
		if err != nil {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{
			Volume:    m[1],
			Timestamp: ts,
			File:      filepath.Join(dir, d.Name()),
			Size:      info.Size(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].Volume < out[j].Volume
	})
	return out, nil
}
