// Package builder assembles named, reusable sub-plans. Each sub-plan appends
// to a caller-owned plan, so a full setup composes several sub-plans into one
// executable unit. Conditional operations are guarded by prechecks evaluated
// fresh on every invocation, which makes repeated runs idempotent.
package builder

import (
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/boardsetup-cli/boardsetup/internal/config"
	"github.com/boardsetup-cli/boardsetup/internal/plan"
	"github.com/boardsetup-cli/boardsetup/internal/precheck"
)

// Prompter gathers interactive answers during plan construction.
type Prompter interface {
	// ReadLine displays prompt and returns one line of user input.
	ReadLine(prompt string) (string, error)
}

type Builder struct {
	profile  *config.Profile
	env      config.Env
	checks   precheck.Checker
	prompter Prompter
	out      io.Writer
}

// New creates a builder over the given profile and environment. checks is
// consulted for every conditional operation; prompter drives the
// shared-folder dialog; out receives re-prompt messages.
func New(profile *config.Profile, env config.Env, checks precheck.Checker, prompter Prompter, out io.Writer) *Builder {
	return &Builder{
		profile:  profile,
		env:      env,
		checks:   checks,
		prompter: prompter,
		out:      out,
	}
}

// PackageSet appends the fixed package-manager sequence plus the serial
// group membership command. No conditionals: the package manager is itself
// idempotent for already-installed packages.
func (b *Builder) PackageSet(p *plan.Plan) {
	p.Append(plan.Shell("package-index-update", "apt-get update"))

	for _, pkg := range b.profile.Packages.Install {
		p.Append(plan.Shell("install-"+pkg, "apt-get install -y "+pkg))
	}
	for _, pkg := range b.profile.Packages.Remove {
		p.Append(plan.Shell("purge-"+pkg, "apt-get purge -y "+pkg))
	}

	p.Append(plan.Command("serial-group", "usermod", "-aG", b.profile.Packages.SerialGroup, b.env.SudoUser))
}

// EditorSet appends the editor install sequence, preceded by removal of the
// legacy repository list file when it exists.
func (b *Builder) EditorSet(p *plan.Plan) {
	if b.checks.PathExists(b.profile.Editor.LegacyListFile) {
		p.Append(plan.Command("remove-legacy-editor-repo", "rm", "-f", b.profile.Editor.LegacyListFile))
	}
	for i, command := range b.profile.Editor.Commands {
		p.Append(plan.Shell(fmt.Sprintf("editor-install-%d", i+1), command))
	}
}

// SharedFolderSet walks the interactive shared-folder dialog and appends the
// operations still missing from the system: the mount root directory, the
// desktop symlink and the persistent mount line. Answering no appends
// nothing.
func (b *Builder) SharedFolderSet(p *plan.Plan) error {
	confirmed, err := b.confirm("Configure a VM shared folder?")
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	name, err := b.readFolderName()
	if err != nil {
		return err
	}

	mountRoot := b.profile.Share.MountRoot
	if !b.checks.DirExists(mountRoot) {
		p.Append(plan.Command("create-mount-root", "mkdir", "-p", mountRoot))
	}

	target := filepath.Join(mountRoot, name)
	linkPath := filepath.Join("/home", b.env.SudoUser, "Desktop", name)
	if !b.checks.SymlinkExists(linkPath) {
		p.Append(plan.Command("desktop-symlink", "ln", "-s", target, linkPath))
	}

	fstabLine := fmt.Sprintf(".host:/%s %s fuse.vmhgfs-fuse defaults,allow_other 0 0", name, target)
	if !b.checks.LineInFile(b.profile.Share.FstabFile, fstabLine) {
		p.Append(plan.Shell("persist-mount",
			fmt.Sprintf("printf '%%s\\n' '%s' >> %s", fstabLine, b.profile.Share.FstabFile)))
	}

	return nil
}

// VerifySet appends the toolchain verification operations that are still
// needed: the gdb binary bridge symlink and the debug tool reinstall. When
// the system is already verified this appends nothing.
func (b *Builder) VerifySet(p *plan.Plan) {
	// Any existing entry at the target blocks ln -s, symlink or not.
	if !b.checks.PathExists(b.profile.Verify.BridgeTarget) {
		p.Append(plan.Command("toolchain-gdb-bridge", "ln", "-s",
			b.profile.Verify.BridgeSource, b.profile.Verify.BridgeTarget))
	}
	if !b.checks.CommandAvailable(b.profile.Verify.RequiredTool) {
		p.Append(plan.Shell("reinstall-"+b.profile.Verify.RequiredTool, b.profile.Verify.ReinstallCommand))
	}
}

// confirm asks a case-insensitive yes/no question, re-prompting until the
// answer is recognized.
func (b *Builder) confirm(question string) (bool, error) {
	for {
		answer, err := b.prompter.ReadLine(question + " [y/n]: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(b.out, "Please answer yes or no.")
	}
}

// folderNamePattern restricts shared folder names to characters that stay
// inert inside the generated fstab line and shell operations.
var folderNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// readFolderName asks for the shared folder name, re-prompting on empty or
// unsafe input.
func (b *Builder) readFolderName() (string, error) {
	for {
		name, err := b.prompter.ReadLine("Shared folder name: ")
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			fmt.Fprintln(b.out, "Folder name cannot be empty.")
			continue
		}
		if !folderNamePattern.MatchString(name) {
			fmt.Fprintln(b.out, "Folder name may only contain letters, digits, '.', '_' and '-'.")
			continue
		}
		return name, nil
	}
}
