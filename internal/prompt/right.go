package prompt

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type entryCount struct {
	symbol string
	color  Color // zero leaves the symbol uncolored
	count  int
}

// Right renders the right prompt: the entry type counts of the current directory followed by the
// background job count.
func (r *Renderer) Right() string {
	counts := r.deps.Scanner.Scan()
	printer := message.NewPrinter(language.English)

	var sb strings.Builder
	for _, entry := range []entryCount{
		{symbol: "\uf07b ", color: Yellow, count: counts.Directories},
		{symbol: "\uf15c ", count: counts.Files},
		{symbol: "\U000f1119 ", color: Cyan, count: counts.Sockets},
		{symbol: "\U000f07e6 ", color: Blue, count: counts.Fifos},
		{symbol: "\U000f01d6 ", color: Magenta, count: counts.Blocks},
		{symbol: "\U000f18f4 ", color: Green, count: counts.Characters},
		{symbol: "\U000f0337 ", color: Blue, count: counts.Symlinks},
		{symbol: "\U000f0209 ", color: Red, count: counts.Hiddens},
		{symbol: "\U000f18f9 ", color: Magenta, count: counts.Temporaries},
	} {
		if entry.count == 0 {
			continue
		}
		symbol := entry.symbol
		if entry.color != 0 {
			symbol = colorize(symbol, entry.color)
		}
		sb.WriteString(" " + symbol + printer.Sprintf("%d", entry.count))
	}

	sb.WriteString(whenJobs(" " + colorize("\uf085", Magenta) + " " + zshJobCount))
	sb.WriteString("\n")
	return sb.String()
}
