package config

// DefaultProfileFile is the profile looked for in the working directory when
// no -f flag is given. The profile is optional: compiled-in defaults are used
// when the file does not exist.
const DefaultProfileFile = "boardsetup.toml"

// Profile carries the domain data for one provisioning run: package lists,
// editor install commands, shared-folder paths and verification targets. The
// orchestration engine itself is profile-agnostic.
type Profile struct {
	Packages Packages `toml:"packages"`
	Editor   Editor   `toml:"editor"`
	Share    Share    `toml:"share"`
	Verify   Verify   `toml:"verify"`
	Support  Support  `toml:"support"`
}

// Packages describes the unconditional package set.
type Packages struct {
	// Install is applied in order with one package-manager invocation each.
	Install []string `toml:"install"`
	// Remove lists packages purged after installs. ModemManager is removed
	// by default because it probes serial ports and interferes with board
	// flashing.
	Remove []string `toml:"remove"`
	// SerialGroup is the group the invoking user is added to for serial
	// device access.
	SerialGroup string `toml:"serial_group"`
}

// Editor describes the code editor install sequence.
type Editor struct {
	// LegacyListFile is removed before installing if it exists; stale repo
	// definitions from earlier installs break apt-get update.
	LegacyListFile string `toml:"legacy_list_file"`
	// Commands are opaque shell command lines run in order.
	Commands []string `toml:"commands"`
}

// Share describes the VM shared-folder layout.
type Share struct {
	MountRoot string `toml:"mount_root"`
	FstabFile string `toml:"fstab_file"`
}

// Verify describes the post-install toolchain verification targets.
type Verify struct {
	// BridgeSource and BridgeTarget are the two toolchain binary names
	// bridged by symlink when the target is absent.
	BridgeSource string `toml:"bridge_source"`
	BridgeTarget string `toml:"bridge_target"`
	// RequiredTool is reinstalled via ReinstallCommand when it cannot be
	// resolved on the search path.
	RequiredTool     string `toml:"required_tool"`
	ReinstallCommand string `toml:"reinstall_command"`
}

// Support names the contact surfaced when a run fails.
type Support struct {
	Contact string `toml:"contact"`
}

// Default returns the compiled-in profile for the standard board toolchain
// on a Debian-family host.
func Default() *Profile {
	return &Profile{
		Packages: Packages{
			Install: []string{
				"git",
				"build-essential",
				"gcc-arm-none-eabi",
				"gdb-multiarch",
				"openocd",
				"stlink-tools",
				"python3",
				"python3-pip",
				"minicom",
			},
			Remove:      []string{"modemmanager"},
			SerialGroup: "dialout",
		},
		Editor: Editor{
			LegacyListFile: "/etc/apt/sources.list.d/vscode.list",
			Commands: []string{
				"wget -qO- https://packages.microsoft.com/keys/microsoft.asc | gpg --dearmor > /usr/share/keyrings/packages.microsoft.gpg",
				"echo 'deb [arch=amd64 signed-by=/usr/share/keyrings/packages.microsoft.gpg] https://packages.microsoft.com/repos/code stable main' > /etc/apt/sources.list.d/vscode.list",
				"apt-get update",
				"apt-get install -y code",
			},
		},
		Share: Share{
			MountRoot: "/mnt/hgfs",
			FstabFile: "/etc/fstab",
		},
		Verify: Verify{
			BridgeSource:     "/usr/bin/gdb-multiarch",
			BridgeTarget:     "/usr/bin/arm-none-eabi-gdb",
			RequiredTool:     "openocd",
			ReinstallCommand: "apt-get install --reinstall -y openocd",
		},
		Support: Support{
			Contact: "toolchain-support@boardsetup.dev",
		},
	}
}
