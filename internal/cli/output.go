package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/keytree"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// formatFromPath picks the document format from a file extension. Unknown
// extensions fall back to JSON.
func formatFromPath(path string) keytree.Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, err := keytree.ParseFormat(ext); err == nil {
		return f
	}
	return keytree.FormatJSON
}

// resolveFormat returns the --format flag when set, else the format implied
// by path.
func resolveFormat(flag, path string) (keytree.Format, error) {
	if flag != "" {
		return keytree.ParseFormat(flag)
	}
	return formatFromPath(path), nil
}

// formatCounts renders per-class change counts as "Key=2 Translation=5",
// sorted by class.
func formatCounts(counts map[domain.EntityClass]int) string {
	if len(counts) == 0 {
		return "-"
	}
	classes := make([]string, 0, len(counts))
	for c := range counts {
		classes = append(classes, string(c))
	}
	sort.Strings(classes)

	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = fmt.Sprintf("%s=%d", c, counts[domain.EntityClass(c)])
	}
	return strings.Join(parts, " ")
}

func formatAuthor(id *int64) string {
	if id == nil {
		return "system"
	}
	return fmt.Sprintf("#%d", *id)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
