package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// Validate checks the profile for values the engine cannot work with.
func (p *Profile) Validate() error {
	var errors ValidationErrors

	if len(p.Packages.Install) == 0 {
		errors = append(errors, ValidationError{Field: "packages.install", Message: "at least one package is required"})
	}
	for i, pkg := range p.Packages.Install {
		if strings.TrimSpace(pkg) == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("packages.install[%d]", i), Message: "package name cannot be empty"})
		}
	}
	for i, pkg := range p.Packages.Remove {
		if strings.TrimSpace(pkg) == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("packages.remove[%d]", i), Message: "package name cannot be empty"})
		}
	}
	if strings.TrimSpace(p.Packages.SerialGroup) == "" {
		errors = append(errors, ValidationError{Field: "packages.serial_group", Message: "serial group is required"})
	}

	if len(p.Editor.Commands) == 0 {
		errors = append(errors, ValidationError{Field: "editor.commands", Message: "at least one install command is required"})
	}
	for i, cmd := range p.Editor.Commands {
		if strings.TrimSpace(cmd) == "" {
			errors = append(errors, ValidationError{Field: fmt.Sprintf("editor.commands[%d]", i), Message: "command cannot be empty"})
		}
	}

	if !filepath.IsAbs(p.Share.MountRoot) {
		errors = append(errors, ValidationError{Field: "share.mount_root", Message: "mount root must be an absolute path"})
	}
	if !filepath.IsAbs(p.Share.FstabFile) {
		errors = append(errors, ValidationError{Field: "share.fstab_file", Message: "fstab file must be an absolute path"})
	}

	if !filepath.IsAbs(p.Verify.BridgeSource) {
		errors = append(errors, ValidationError{Field: "verify.bridge_source", Message: "bridge source must be an absolute path"})
	}
	if !filepath.IsAbs(p.Verify.BridgeTarget) {
		errors = append(errors, ValidationError{Field: "verify.bridge_target", Message: "bridge target must be an absolute path"})
	}
	if strings.TrimSpace(p.Verify.RequiredTool) == "" {
		errors = append(errors, ValidationError{Field: "verify.required_tool", Message: "required tool is required"})
	}
	if strings.TrimSpace(p.Verify.ReinstallCommand) == "" {
		errors = append(errors, ValidationError{Field: "verify.reinstall_command", Message: "reinstall command is required"})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
