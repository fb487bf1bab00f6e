// Package precheck provides read-only predicates over current system state,
// used to decide whether a provisioning operation is still necessary.
package precheck

import (
	"bufio"
	"os"
	"os/exec"
	"strings"
)

// Checker inspects current system state. Implementations must evaluate fresh
// on every call with no caching: state changes between menu cycles within the
// same process as a result of prior executor runs.
type Checker interface {
	// PathExists reports whether any filesystem entry exists at path,
	// including dangling symlinks.
	PathExists(path string) bool

	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool

	// SymlinkExists reports whether a symbolic link exists at path. A plain
	// file or directory at path does not count.
	SymlinkExists(path string) bool

	// LineInFile reports whether file contains line, compared after trimming
	// surrounding whitespace. A missing or unreadable file contains nothing.
	LineInFile(file, line string) bool

	// CommandAvailable reports whether name resolves on the search path.
	CommandAvailable(name string) bool
}

// SystemChecker implements Checker against the live filesystem.
type SystemChecker struct{}

// NewSystemChecker returns a checker backed by the real system.
func NewSystemChecker() *SystemChecker {
	return &SystemChecker{}
}

func (*SystemChecker) PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (*SystemChecker) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (*SystemChecker) SymlinkExists(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}

func (*SystemChecker) LineInFile(file, line string) bool {
	f, err := os.Open(file)
	if err != nil {
		return false
	}
	defer f.Close()

	want := strings.TrimSpace(line)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == want {
			return true
		}
	}
	return false
}

func (*SystemChecker) CommandAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
