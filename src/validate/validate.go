package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// volumeNameRe matches the names the Docker daemon itself accepts for
// volumes: an alphanumeric first character, then alphanumerics, underscores,
// dots, and hyphens.
var volumeNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// archivePathDenied are the characters rejected in archive paths. The
// container command is always an argv array, so this is defense in depth
// rather than the primary safeguard.
const archivePathDenied = "|;&$`\\"

// VolumeName checks that name is a syntactically valid volume name.
func VolumeName(name string) error {
	if name == "" {
		return fmt.Errorf("volume name must not be empty")
	}
	if !volumeNameRe.MatchString(name) {
		return fmt.Errorf("invalid volume name %q: must match %s", name, volumeNameRe.String())
	}
	return nil
}

// ArchivePath checks that path is an acceptable archive file path: relative
// to the working directory, no parent traversal, no shell metacharacters.
func ArchivePath(path string) error {
	if path == "" {
		return fmt.Errorf("archive path must not be empty")
	}
	if strings.HasPrefix(path, "/") {
		return fmt.Errorf("invalid archive path %q: absolute paths are not allowed", path)
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("invalid archive path %q: parent traversal is not allowed", path)
	}
	if i := strings.IndexAny(path, archivePathDenied); i >= 0 {
		return fmt.Errorf("invalid archive path %q: character %q is not allowed", path, path[i])
	}
	return nil
}
