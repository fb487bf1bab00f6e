package precheck

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSystemChecker_PathExists(t *testing.T) {
	dir := t.TempDir()
	checker := NewSystemChecker()

	file := filepath.Join(dir, "present")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if !checker.PathExists(file) {
		t.Error("expected PathExists to be true for an existing file")
	}
	if checker.PathExists(filepath.Join(dir, "missing")) {
		t.Error("expected PathExists to be false for a missing path")
	}

	// A dangling symlink is still a filesystem entry.
	dangling := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "gone"), dangling); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}
	if !checker.PathExists(dangling) {
		t.Error("expected PathExists to be true for a dangling symlink")
	}
}

func TestSystemChecker_DirExists(t *testing.T) {
	dir := t.TempDir()
	checker := NewSystemChecker()

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if !checker.DirExists(dir) {
		t.Error("expected DirExists to be true for a directory")
	}
	if checker.DirExists(file) {
		t.Error("expected DirExists to be false for a plain file")
	}
	if checker.DirExists(filepath.Join(dir, "missing")) {
		t.Error("expected DirExists to be false for a missing path")
	}
}

func TestSystemChecker_SymlinkExists(t *testing.T) {
	dir := t.TempDir()
	checker := NewSystemChecker()

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	link := filepath.Join(dir, "link")
	if err := os.Symlink(file, link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	if !checker.SymlinkExists(link) {
		t.Error("expected SymlinkExists to be true for a symlink")
	}
	if checker.SymlinkExists(file) {
		t.Error("expected SymlinkExists to be false for a plain file")
	}
	if checker.SymlinkExists(filepath.Join(dir, "missing")) {
		t.Error("expected SymlinkExists to be false for a missing path")
	}
}

func TestSystemChecker_LineInFile(t *testing.T) {
	dir := t.TempDir()
	checker := NewSystemChecker()

	fstab := filepath.Join(dir, "fstab")
	content := "# static file system information\n" +
		".host:/projects /mnt/hgfs/projects fuse.vmhgfs-fuse defaults,allow_other 0 0\n" +
		"  /dev/sda1 / ext4 defaults 0 1  \n"
	if err := os.WriteFile(fstab, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		line string
		want bool
	}{
		{
			name: "exact line present",
			line: ".host:/projects /mnt/hgfs/projects fuse.vmhgfs-fuse defaults,allow_other 0 0",
			want: true,
		},
		{
			name: "surrounding whitespace ignored",
			line: "/dev/sda1 / ext4 defaults 0 1",
			want: true,
		},
		{
			name: "absent line",
			line: ".host:/other /mnt/hgfs/other fuse.vmhgfs-fuse defaults,allow_other 0 0",
			want: false,
		},
		{
			name: "partial match does not count",
			line: ".host:/projects",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.LineInFile(fstab, tt.line); got != tt.want {
				t.Errorf("LineInFile() = %v, want %v", got, tt.want)
			}
		})
	}

	if checker.LineInFile(filepath.Join(dir, "missing"), "anything") {
		t.Error("expected LineInFile to be false for a missing file")
	}
}

func TestSystemChecker_CommandAvailable(t *testing.T) {
	checker := NewSystemChecker()

	if !checker.CommandAvailable("sh") {
		t.Error("expected 'sh' to be available on the search path")
	}
	if checker.CommandAvailable("definitely-not-a-real-command-xyz") {
		t.Error("expected nonsense command to be unavailable")
	}
}
