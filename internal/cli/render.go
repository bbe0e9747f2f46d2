package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordglob/internal/utils"
	"github.com/bastiangx/wordglob/pkg/config"
	"github.com/bastiangx/wordglob/pkg/query"
	"github.com/charmbracelet/lipgloss"
)

// renderer draws the result panels.
// With color off only the borders are drawn.
type renderer struct {
	panel    lipgloss.Style
	none     lipgloss.Style
	repeats  lipgloss.Style
	title    lipgloss.Style
	count    lipgloss.Style
	words    lipgloss.Style
	bold     lipgloss.Style
	black    lipgloss.Style
	yellowLt lipgloss.Style
}

func newRenderer(out io.Writer, cfg config.CliConfig) *renderer {
	r := lipgloss.NewRenderer(out)
	base := r.NewStyle()

	panel := base.Border(lipgloss.RoundedBorder()).Padding(0, 1)
	// width covers the padding but not the border
	if cfg.PanelWidth > 2 {
		panel = panel.Width(cfg.PanelWidth - 2)
	}

	rd := &renderer{
		panel:    panel,
		none:     panel,
		repeats:  panel,
		title:    base,
		count:    base,
		words:    base,
		bold:     base,
		black:    base,
		yellowLt: base,
	}
	if !cfg.Color {
		return rd
	}

	green := lipgloss.Color("2")
	red := lipgloss.Color("1")
	yellow := lipgloss.Color("3")

	rd.none = panel.BorderForeground(red).Foreground(red).Bold(true)
	rd.repeats = panel.BorderForeground(yellow)
	rd.title = base.Bold(true)
	rd.count = base.Bold(true).Foreground(green)
	rd.words = base.Bold(true).Foreground(green)
	rd.bold = base.Bold(true)
	rd.black = base.Bold(true).Foreground(lipgloss.Color("8"))
	rd.yellowLt = base.Bold(true).Foreground(yellow)
	return rd
}

func (r *renderer) heading(s string) string   { return r.bold.Render(s) }
func (r *renderer) blacklist(s string) string { return r.black.Render(s) }
func (r *renderer) yellow(s string) string    { return r.yellowLt.Render(s) }

// results renders the All, No Repeats and Repeats panels.
// Each group that is empty gets a no match panel instead.
func (r *renderer) results(pattern string, res query.Result) string {
	var panels []string

	if res.Empty() {
		panels = append(panels, r.none.Render(
			r.title.Render("Results")+"\n"+
				fmt.Sprintf("No words match the pattern: '%s'", pattern)))
	} else {
		panels = append(panels, r.group(r.panel, "All Results", pattern, "", res.All))
	}

	if len(res.NoRepeat) > 0 {
		panels = append(panels, r.group(r.panel, "Results (No Repeats)", pattern, " with no repeating letters", res.NoRepeat))
	} else {
		panels = append(panels, r.none.Render(
			r.title.Render("Results (No Repeats)")+"\n"+
				fmt.Sprintf("No words match '%s' without repeating letters", pattern)))
	}

	if len(res.WithRepeat) > 0 {
		panels = append(panels, r.group(r.repeats, "Results (Repeats)", pattern, " with repeating letters", res.WithRepeat))
	} else {
		panels = append(panels, r.none.Render(
			r.title.Render("Results (Repeats)")+"\n"+
				fmt.Sprintf("No words match '%s' with repeating letters", pattern)))
	}

	return strings.Join(panels, "\n")
}

func (r *renderer) group(style lipgloss.Style, title, pattern, qualifier string, words []string) string {
	header := r.title.Render(title) + " " + r.count.Render(utils.FormatWithCommas(len(words)))
	body := fmt.Sprintf("Words matching '%s'%s: ", pattern, qualifier) +
		r.words.Render(utils.JoinWords(words, ", ", ""))
	return style.Render(header + "\n" + body)
}
