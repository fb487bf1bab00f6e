package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LoadProfile loads a TOML profile from filename and merges it over the
// compiled-in defaults. Keys absent from the file keep their default values.
func LoadProfile(filename string) (*Profile, error) {
	if filename == "" {
		return nil, fmt.Errorf("profile filename cannot be empty")
	}

	cleanPath := filepath.Clean(filename)

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile '%s' does not exist", cleanPath)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("permission denied reading profile '%s'", cleanPath)
		}
		return nil, fmt.Errorf("failed to access profile '%s': %w", cleanPath, err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("'%s' is a directory, not a file", cleanPath)
	}

	profile := Default()

	var raw Profile
	meta, err := toml.DecodeFile(cleanPath, &raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing profile '%s': %w", cleanPath, err)
	}

	mergeProfile(profile, &raw, meta)

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return profile, nil
}

// LoadProfileOrDefault behaves like LoadProfile but falls back to the
// compiled-in defaults when the default profile file is simply absent. An
// explicitly named file must exist.
func LoadProfileOrDefault(filename string) (*Profile, error) {
	if filename == DefaultProfileFile {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			profile := Default()
			if err := profile.Validate(); err != nil {
				return nil, fmt.Errorf("default profile validation failed: %w", err)
			}
			return profile, nil
		}
	}
	return LoadProfile(filename)
}

// mergeProfile overlays keys the file actually defines onto the defaults,
// leaving everything else untouched.
func mergeProfile(dst, src *Profile, meta toml.MetaData) {
	if meta.IsDefined("packages", "install") {
		dst.Packages.Install = src.Packages.Install
	}
	if meta.IsDefined("packages", "remove") {
		dst.Packages.Remove = src.Packages.Remove
	}
	if meta.IsDefined("packages", "serial_group") {
		dst.Packages.SerialGroup = src.Packages.SerialGroup
	}
	if meta.IsDefined("editor", "legacy_list_file") {
		dst.Editor.LegacyListFile = src.Editor.LegacyListFile
	}
	if meta.IsDefined("editor", "commands") {
		dst.Editor.Commands = src.Editor.Commands
	}
	if meta.IsDefined("share", "mount_root") {
		dst.Share.MountRoot = src.Share.MountRoot
	}
	if meta.IsDefined("share", "fstab_file") {
		dst.Share.FstabFile = src.Share.FstabFile
	}
	if meta.IsDefined("verify", "bridge_source") {
		dst.Verify.BridgeSource = src.Verify.BridgeSource
	}
	if meta.IsDefined("verify", "bridge_target") {
		dst.Verify.BridgeTarget = src.Verify.BridgeTarget
	}
	if meta.IsDefined("verify", "required_tool") {
		dst.Verify.RequiredTool = src.Verify.RequiredTool
	}
	if meta.IsDefined("verify", "reinstall_command") {
		dst.Verify.ReinstallCommand = src.Verify.ReinstallCommand
	}
	if meta.IsDefined("support", "contact") {
		dst.Support.Contact = src.Support.Contact
	}
}
