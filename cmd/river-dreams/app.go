package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Veraticus/river-dreams/internal/config"
	"github.com/Veraticus/river-dreams/internal/logging"
	"github.com/Veraticus/river-dreams/internal/metadata"
	"github.com/Veraticus/river-dreams/internal/prompt"
)

var (
	errNoCommand    = errors.New("no command provided")
	errNoPromptSide = errors.New("no prompt side provided")
	errWrite        = errors.New("can not write to the standard output stream")
)

// dependencyLoader builds the prompt dependencies and a cleanup to run once rendering is done.
type dependencyLoader func() (*prompt.Dependencies, func(), error)

type app struct {
	meta             metadata.Metadata
	stdout           io.Writer
	stderr           io.Writer
	openURL          func(url string) error
	loadDependencies dependencyLoader
}

func newApp(stdout, stderr io.Writer) *app {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &app{
		meta:             metadata.New(),
		stdout:           stdout,
		stderr:           stderr,
		openURL:          browser.OpenURL,
		loadDependencies: defaultDependencies,
	}
}

func defaultDependencies() (*prompt.Dependencies, func(), error) {
	cfg, err := config.Load(afero.NewOsFs())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return prompt.NewDefaultDependencies(cfg, logger), func() { _ = logger.Sync() }, nil
}

// execute runs the command line and returns the process exit code.
func (a *app) execute(args []string) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	root := a.newRootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.writeError(err)
		return 1
	}
	return 0
}

type rootOptions struct {
	version    bool
	license    bool
	repository bool
	email      bool
}

func (a *app) newRootCommand() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:           a.meta.Name,
		Short:         "Performs actions related to the River Dreams theme.",
		SilenceErrors: true,
		SilenceUsage:  true,
		// Commands are validated in RunE so unknown ones get the same error banner as everything else
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runRoot(opts, args)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(flagError)
	root.SetHelpFunc(a.writeHelp)

	flags := root.Flags()
	flags.BoolVarP(&opts.version, "version", "v", false, "shows the software version.")
	flags.BoolVarP(&opts.license, "license", "l", false, "shows the software license.")
	flags.BoolVarP(&opts.repository, "repository", "g", false, "opens the software repository.")
	flags.BoolVarP(&opts.email, "email", "m", false, "drafts an e-mail to the developer.")

	root.AddCommand(a.newPromptCommand(), a.newInitCommand())
	return root
}

func (a *app) runRoot(opts rootOptions, args []string) error {
	switch {
	case opts.version:
		return a.write(a.versionText())
	case opts.repository:
		if err := a.openURL(a.meta.RepositoryURL); err != nil {
			return errors.New("can not open the repository in the default web browser")
		}
		return a.write("Opening the repository in the default web browser.\n")
	case opts.email:
		if err := a.openURL(a.meta.Developer.EmailURL()); err != nil {
			return errors.New("can not draft e-mail to developer in the default e-mail client")
		}
		return a.write("Drafting e-mail to developer in the default e-mail client.\n")
	case opts.license:
		return a.write(a.meta.License.Text + "\n")
	case len(args) == 0:
		return errNoCommand
	default:
		return fmt.Errorf("invalid command %q provided", args[0])
	}
}

func (a *app) newPromptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "writes a prompt side using ZSH syntax.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errNoPromptSide
			}
			switch args[0] {
			case "l", "left", "r", "right":
				return nil
			default:
				return fmt.Errorf("invalid prompt side %q provided", args[0])
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runPrompt(args[0])
		},
	}
}

func (a *app) runPrompt(side string) error {
	deps, cleanup, err := a.loadDependencies()
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	renderer := prompt.New(deps)
	if side == "l" || side == "left" {
		left, err := renderer.Left()
		if err != nil {
			return err
		}
		return a.write(left)
	}
	return a.write(renderer.Right())
}

func (a *app) newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "dumps the ZSH script that initiates the prompt.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.write(prompt.Init(a.meta.Name))
		},
	}
}

func (a *app) write(text string) error {
	if _, err := io.WriteString(a.stdout, text); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}
	return nil
}

// flagError rewrites pflag parse errors into the application's wording.
func flagError(cmd *cobra.Command, err error) error {
	option := unknownOption(err.Error())
	if cmd.HasParent() {
		return fmt.Errorf("invalid option %q provided for %q command", option, cmd.Name())
	}
	return fmt.Errorf("invalid option %q provided", option)
}

// unknownOption extracts the offending option from messages such as "unknown flag: --foo",
// "unknown shorthand flag: 'x' in -xyz" and "bad flag syntax: ---x".
func unknownOption(message string) string {
	if name, ok := strings.CutPrefix(message, "unknown flag: "); ok {
		return name
	}
	if rest, ok := strings.CutPrefix(message, "unknown shorthand flag: '"); ok {
		if short, _, found := strings.Cut(rest, "'"); found {
			return "-" + short
		}
	}
	if _, rest, found := strings.Cut(message, "flag syntax: "); found && rest != "" {
		return rest
	}
	return message
}
