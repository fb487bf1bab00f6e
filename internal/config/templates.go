package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// TemplateGenerator creates an annotated example profile in the output
// directory so users can customize package lists without reading source.
type TemplateGenerator struct {
	OutputDir string
}

// NewTemplateGenerator creates a generator writing to the current directory.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{OutputDir: "."}
}

// GenerateProfileTemplate writes the default profile as a commented TOML
// file. An existing file is never overwritten.
func (tg *TemplateGenerator) GenerateProfileTemplate() error {
	fullPath := filepath.Join(tg.OutputDir, DefaultProfileFile)

	if _, err := os.Stat(fullPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", fullPath)
	}

	if err := os.WriteFile(fullPath, []byte(profileTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", fullPath, err)
	}

	fmt.Printf("Created %s\n", fullPath)
	fmt.Printf("Edit the package lists and paths, then run: sudo boardsetup -f %s\n", DefaultProfileFile)
	return nil
}

const profileTemplate = `# boardsetup provisioning profile
#
# Every key is optional; omitted keys fall back to the compiled-in defaults
# shown here.

[packages]
# Installed in order, one package-manager invocation each.
install = [
  "git",
  "build-essential",
  "gcc-arm-none-eabi",
  "gdb-multiarch",
  "openocd",
  "stlink-tools",
  "python3",
  "python3-pip",
  "minicom",
]
# Purged after installs. ModemManager probes serial ports and interferes
# with board flashing.
remove = ["modemmanager"]
# Group granting the invoking user serial device access.
serial_group = "dialout"

[editor]
# Removed before installing if present; stale repo definitions break updates.
legacy_list_file = "/etc/apt/sources.list.d/vscode.list"
commands = [
  "wget -qO- https://packages.microsoft.com/keys/microsoft.asc | gpg --dearmor > /usr/share/keyrings/packages.microsoft.gpg",
  "echo 'deb [arch=amd64 signed-by=/usr/share/keyrings/packages.microsoft.gpg] https://packages.microsoft.com/repos/code stable main' > /etc/apt/sources.list.d/vscode.list",
  "apt-get update",
  "apt-get install -y code",
]

[share]
mount_root = "/mnt/hgfs"
fstab_file = "/etc/fstab"

[verify]
bridge_source = "/usr/bin/gdb-multiarch"
bridge_target = "/usr/bin/arm-none-eabi-gdb"
required_tool = "openocd"
reinstall_command = "apt-get install --reinstall -y openocd"

[support]
contact = "toolchain-support@boardsetup.dev"
`
