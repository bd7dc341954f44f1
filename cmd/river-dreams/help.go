package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/river-dreams/internal/metadata"
	"github.com/Veraticus/river-dreams/internal/output"
	"github.com/Veraticus/river-dreams/internal/shared"
)

var helpRow = output.Row{Names: []string{"-h", "--help"}, Description: "shows the command help instructions."}

func (a *app) writeHelp(cmd *cobra.Command, _ []string) {
	var page string
	switch cmd.Name() {
	case "prompt":
		page = promptHelp(a.meta)
	case "init":
		page = initHelp(a.meta)
	default:
		page = mainHelp(a.meta)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), page)
}

func mainHelp(meta metadata.Metadata) string {
	commands := output.NewListRenderer(shared.CommandStyle)
	options := output.NewListRenderer(shared.OptionStyle)

	var sb strings.Builder
	sb.WriteString(output.Usage(meta.Name, []string{"COMMAND"}, []string{"OPTIONS"}) + "\n")
	sb.WriteString("Performs actions related to the River Dreams theme.\n\n")
	sb.WriteString(commands.Render("AVAILABLE COMMANDS", []output.Row{
		{Names: []string{"prompt"}, Description: "writes a prompt side using ZSH syntax."},
		{Names: []string{"init"}, Description: "dumps the ZSH script that initiates the prompt."},
	}))
	sb.WriteString("\n")
	sb.WriteString(output.Info("use " + helpOptions() + " with each for their help instructions.\n\n"))
	sb.WriteString(options.Render("AVAILABLE OPTIONS", []output.Row{
		{Names: []string{"-h", "--help"}, Description: "shows the software help instructions."},
		{Names: []string{"-v", "--version"}, Description: "shows the software version."},
		{Names: []string{"-l", "--license"}, Description: "shows the software license."},
		{Names: []string{"-g", "--repository"}, Description: "opens the software repository."},
		{Names: []string{"-m", "--email"}, Description: "drafts an e-mail to the developer."},
	}))
	return sb.String()
}

func promptHelp(meta metadata.Metadata) string {
	sides := output.NewListRenderer(shared.CommandStyle)
	options := output.NewListRenderer(shared.OptionStyle)

	var sb strings.Builder
	sb.WriteString(output.Usage(meta.Name+" prompt", []string{"SIDE"}, []string{"OPTIONS"}) + "\n")
	sb.WriteString("Writes a prompt side using ZSH syntax.\n\n")
	sb.WriteString("Its outputs are used during initialization to write the prompt.\n\n")
	sb.WriteString("For more information, use:\n\n")
	sb.WriteString("    " + meta.Name + " init -h;\n\n")
	sb.WriteString(sides.Render("AVAILABLE SIDES", []output.Row{
		{Names: []string{"l", "left"}, Description: "writes the left prompt."},
		{Names: []string{"r", "right"}, Description: "writes the right prompt."},
	}))
	sb.WriteString("\n")
	sb.WriteString(options.Render("AVAILABLE OPTIONS", []output.Row{helpRow}))
	return sb.String()
}

func initHelp(meta metadata.Metadata) string {
	options := output.NewListRenderer(shared.OptionStyle)

	var sb strings.Builder
	sb.WriteString(output.Usage(meta.Name+" init", nil, []string{"OPTIONS"}) + "\n")
	sb.WriteString("Dumps the ZSH script that initiates the prompt.\n\n")
	sb.WriteString("Its output is meant to be executed during the ZSH startup, by adding:\n\n")
	sb.WriteString("    eval $(" + meta.Name + " init);\n\n")
	sb.WriteString("to your ~/.zshrc configuration file.\n\n")
	sb.WriteString(options.Render("AVAILABLE OPTIONS", []output.Row{helpRow}))
	return sb.String()
}

func (a *app) versionText() string {
	meta := a.meta
	return fmt.Sprintf("%s %s (%s)\nAvailable at: %s.\n\nLicensed under the %s license.\nCopyright © %d %s <%s>.\n",
		shared.NameStyle.Render(meta.Name),
		meta.Version,
		metadata.OSName(),
		shared.LinkStyle.Render(meta.RepositoryURL),
		meta.License.Name,
		meta.CreationYear,
		meta.Developer.Name,
		shared.LinkStyle.Render(meta.Developer.Email),
	)
}

func helpOptions() string {
	return shared.OptionStyle.Render("-h") + " or " + shared.OptionStyle.Render("--help")
}

// writeError prints the error banner to stderr. Write failures are ignored.
func (a *app) writeError(err error) {
	message := err.Error()
	if !strings.HasSuffix(message, ".") {
		message += "."
	}
	_, _ = fmt.Fprintf(a.stderr, "%s %s %s%s %s\n%s\n",
		shared.Mark(),
		shared.NameStyle.Render(a.meta.Name),
		shared.ExitStyle.Render("(exit 1)"),
		shared.NameStyle.Render(":"),
		message,
		output.Info("use "+helpOptions()+" for help instructions."),
	)
}
