// Package menu implements the top-level interactive loop. Each menu option
// composes sub-plans, executes them and persists an audit report, then
// returns to the menu with all transient state cleared.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/boardsetup-cli/boardsetup/internal/audit"
	"github.com/boardsetup-cli/boardsetup/internal/builder"
	"github.com/boardsetup-cli/boardsetup/internal/config"
	"github.com/boardsetup-cli/boardsetup/internal/executor"
	"github.com/boardsetup-cli/boardsetup/internal/plan"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")) // Red

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey
)

// State identifies the controller's position in the menu state machine.
type State int

const (
	StateMenuDisplay State = iota
	StateExecutingFullSetup
	StateExecutingPackagesOnly
	StateExecutingEditorOnly
	StateExecutingShareFolderOnly
	StateExecutingVerifyOnly
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenuDisplay:
		return "menu"
	case StateExecutingFullSetup:
		return "full-setup"
	case StateExecutingPackagesOnly:
		return "packages-only"
	case StateExecutingEditorOnly:
		return "editor-only"
	case StateExecutingShareFolderOnly:
		return "share-folder-only"
	case StateExecutingVerifyOnly:
		return "verify-only"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Runner executes a composed plan. *executor.Executor is the production
// implementation.
type Runner interface {
	Run(ctx context.Context, p *plan.Plan) (executor.Result, error)
}

// Options configures a Controller.
type Options struct {
	Profile   *config.Profile
	Env       config.Env
	Builder   *builder.Builder
	Executor  Runner
	Prompter  builder.Prompter
	Out       io.Writer
	WorkDir   string
	ReportDir string
}

// Controller owns the menu loop. It holds no plan or audit state between
// cycles: both are created per cycle and cleared when the cycle ends.
type Controller struct {
	opts Options
}

// NewController creates a menu controller.
func NewController(opts Options) *Controller {
	return &Controller{opts: opts}
}

// Run displays the menu until the user exits or an operation fails. A nil
// return means a normal exit; a non-nil return carries the first operation
// failure and the process should terminate with a non-zero status.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.printMenu()

		choice, err := c.opts.Prompter.ReadLine("Select an option [1-6]: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.opts.Out, "Goodbye!")
				return nil
			}
			return err
		}

		state, ok := stateForChoice(strings.TrimSpace(choice))
		if !ok {
			fmt.Fprintln(c.opts.Out, errorStyle.Render("Invalid option, enter a number from 1 to 6."))
			continue
		}

		if state == StateExit {
			fmt.Fprintln(c.opts.Out, "Goodbye!")
			return nil
		}

		if err := c.runCycle(ctx, state); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// stateForChoice maps a menu selection onto its execution state.
func stateForChoice(choice string) (State, bool) {
	switch choice {
	case "1":
		return StateExecutingFullSetup, true
	case "2":
		return StateExecutingPackagesOnly, true
	case "3":
		return StateExecutingEditorOnly, true
	case "4":
		return StateExecutingShareFolderOnly, true
	case "5":
		return StateExecutingVerifyOnly, true
	case "6":
		return StateExit, true
	default:
		return StateMenuDisplay, false
	}
}

// runCycle builds the plan for one menu selection, executes it and writes
// the audit report. The plan and the audit log are scoped to this call; the
// next cycle starts from scratch.
func (c *Controller) runCycle(ctx context.Context, state State) error {
	p := plan.New()

	var buildErr error
	switch state {
	case StateExecutingFullSetup:
		c.opts.Builder.PackageSet(p)
		c.opts.Builder.EditorSet(p)
		buildErr = c.opts.Builder.SharedFolderSet(p)
	case StateExecutingPackagesOnly:
		c.opts.Builder.PackageSet(p)
	case StateExecutingEditorOnly:
		c.opts.Builder.EditorSet(p)
	case StateExecutingShareFolderOnly:
		buildErr = c.opts.Builder.SharedFolderSet(p)
	case StateExecutingVerifyOnly:
		c.opts.Builder.VerifySet(p)
	default:
		return fmt.Errorf("no plan for state '%s'", state)
	}
	if buildErr != nil {
		return buildErr
	}

	log := audit.New(c.opts.Env.SudoUser, c.opts.WorkDir)
	result, runErr := c.exec(ctx, p, log)

	reportPath, reportErr := log.WriteReport(c.opts.ReportDir)
	if reportErr != nil {
		fmt.Fprintln(c.opts.Out, errorStyle.Render("Warning: "+reportErr.Error()))
	} else {
		fmt.Fprintln(c.opts.Out, noticeStyle.Render("Audit report written to "+reportPath))
	}

	if runErr != nil {
		fmt.Fprintln(c.opts.Out, errorStyle.Render("Setup stopped at the first failed operation."))
		fmt.Fprintf(c.opts.Out, "Completed %d of %d operation(s) before the failure.\n",
			result.SuccessCount(), p.Len())
		if c.opts.Profile.Support.Contact != "" {
			fmt.Fprintf(c.opts.Out, "If the failure persists, contact %s and attach the audit report.\n",
				c.opts.Profile.Support.Contact)
		}
		return runErr
	}

	p.Clear()
	log.Reset()
	fmt.Fprintln(c.opts.Out)
	return nil
}

// exec runs the plan and mirrors every outcome into the audit log.
func (c *Controller) exec(ctx context.Context, p *plan.Plan, log *audit.Log) (executor.Result, error) {
	result, err := c.opts.Executor.Run(ctx, p)
	for _, outcome := range result.Outcomes {
		if outcome.Success {
			log.RecordSuccess(outcome.Operation.CommandLine(), outcome.Timestamp)
		} else {
			log.RecordFailure(outcome.Operation.CommandLine(), outcome.Timestamp)
		}
	}
	return result, err
}

func (c *Controller) printMenu() {
	out := c.opts.Out
	fmt.Fprintln(out, titleStyle.Render("boardsetup - board development environment"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  1) Full setup (packages + editor + shared folder)")
	fmt.Fprintln(out, "  2) Install packages only")
	fmt.Fprintln(out, "  3) Install editor only")
	fmt.Fprintln(out, "  4) Configure shared folder only")
	fmt.Fprintln(out, "  5) Verify toolchain")
	fmt.Fprintln(out, "  6) Exit")
	fmt.Fprintln(out)
}
