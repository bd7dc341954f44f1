package shared

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestMark(t *testing.T) {
	if got := ansi.Strip(Mark()); got != ":<>::" {
		t.Errorf("Mark() = %q, want %q", got, ":<>::")
	}
}
