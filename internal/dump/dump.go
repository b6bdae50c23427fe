// Package dump renders an element tree as indented text for launch
// diagnostics.
package dump

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/snowui/element"
)

// Options controls tree rendering.
type Options struct {
	// Color styles node kinds and attributes. Leave false for
	// byte-stable output.
	Color bool

	// MaxDepth limits descent; zero means unlimited. Children past the
	// limit collapse into one elision marker.
	MaxDepth int
}

type renderer struct {
	opts  Options
	kind  lipgloss.Style
	attr  lipgloss.Style
	guide lipgloss.Style
	sb    strings.Builder
}

// Render returns a tree dump of root, one node per line with box-drawing
// guides. Output is deterministic when opts.Color is false.
func Render(root element.Object, opts Options) string {
	r := &renderer{
		opts:  opts,
		kind:  lipgloss.NewStyle(),
		attr:  lipgloss.NewStyle(),
		guide: lipgloss.NewStyle(),
	}
	if opts.Color {
		r.kind = r.kind.Foreground(lipgloss.Color("#89b4fa")).Bold(true)
		r.attr = r.attr.Foreground(lipgloss.Color("#bac2de"))
		r.guide = r.guide.Foreground(lipgloss.Color("#6c7086"))
	}
	r.node(root, "", "", 1)
	return r.sb.String()
}

func (r *renderer) node(obj element.Object, lead, childLead string, depth int) {
	r.sb.WriteString(lead)
	r.sb.WriteString(r.line(obj))
	r.sb.WriteByte('\n')

	children := childrenOf(obj)
	if len(children) == 0 {
		return
	}
	if r.opts.MaxDepth > 0 && depth >= r.opts.MaxDepth {
		r.sb.WriteString(childLead + r.guide.Render("└─ ") + "…\n")
		return
	}

	for i, c := range children {
		guide, cont := "├─ ", "│  "
		if i == len(children)-1 {
			guide, cont = "└─ ", "   "
		}
		r.node(c, childLead+r.guide.Render(guide), childLead+r.guide.Render(cont), depth+1)
	}
}

func (r *renderer) line(obj element.Object) string {
	switch n := obj.(type) {
	case element.Board:
		return r.kind.Render("Board") + r.attr.Render(fmt.Sprintf(
			" width=%s height=%s halign=%s valign=%s", n.Width, n.Height, n.HAlign, n.VAlign))
	case element.Card:
		return r.kind.Render("Card")
	case element.Row:
		return r.kind.Render("Row")
	case element.Text:
		return r.kind.Render("Text") + r.attr.Render(" "+strconv.Quote(n.Text))
	case element.Button:
		return r.kind.Render("Button") + r.attr.Render(" "+strconv.Quote(n.Text))
	case element.TextClock:
		return r.kind.Render("TextClock") + r.attr.Render(" format="+strconv.Quote(n.Layout()))
	case element.TextInput:
		attrs := " name=" + strconv.Quote(n.Name) + " type=" + strconv.Quote(n.InputType())
		if n.Label != "" {
			attrs += " label=" + strconv.Quote(n.Label)
		}
		if n.MaxLen > 0 {
			attrs += fmt.Sprintf(" max_len=%d", n.MaxLen)
		}
		return r.kind.Render("TextInput") + r.attr.Render(attrs)
	case element.Form:
		var attrs string
		if n.OnSubmit != nil {
			attrs += " submit=<handler>"
		}
		if n.SubmitButton.Text != "" {
			attrs += " submit_button=" + strconv.Quote(n.SubmitButton.Text)
		}
		if n.ResetButton.Text != "" {
			attrs += " reset_button=" + strconv.Quote(n.ResetButton.Text)
		}
		if attrs == "" {
			return r.kind.Render("Form")
		}
		return r.kind.Render("Form") + r.attr.Render(attrs)
	case element.Switch:
		return r.kind.Render("Switch") + r.attr.Render(fmt.Sprintf(" active=%d", n.ActiveIndex()))
	case element.Girl:
		attrs := fmt.Sprintf(" hair=%s skin=%s body=%s look=%s",
			n.HairColor, n.SkinColor, n.BodyType, n.Appearance)
		if len(n.EveryMorning) > 0 {
			names := make([]string, len(n.EveryMorning))
			for i, a := range n.EveryMorning {
				names[i] = a.String()
			}
			attrs += " morning=[" + strings.Join(names, " ") + "]"
		}
		return r.kind.Render("Girl") + r.attr.Render(attrs)
	default:
		return fmt.Sprintf("%T", obj)
	}
}

func childrenOf(obj element.Object) []element.Object {
	switch n := obj.(type) {
	case element.Board:
		return n.Children
	case element.Card:
		return n.Children
	case element.Row:
		return n.Children
	case element.Form:
		return n.Children
	case element.Switch:
		return n.Children
	default:
		return nil
	}
}
