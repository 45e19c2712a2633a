package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

type textEncoder struct {
	w      io.Writer
	r      *lipgloss.Renderer
	styles Styles
}

func newTextEncoder(w io.Writer, opts Options) (Encoder, error) {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor || !ColorEnabled(w) {
		r.SetColorProfile(termenv.Ascii)
		pterm.DisableStyling()
	} else {
		pterm.EnableStyling()
	}

	styles, err := LoadStyles(r, opts.StylesPath)
	if err != nil {
		return nil, err
	}
	return &textEncoder{w: w, r: r, styles: styles}, nil
}

func (e *textEncoder) style(name, s string) string {
	return e.styles.Get(e.r, name).Render(s)
}

func (e *textEncoder) Encode(v any) error {
	var out string
	switch v := v.(type) {
	case Number:
		out = e.number(v)
	case Value:
		out = e.value(v)
	case Failure:
		out = e.failure(v)
	case Batch:
		lines := make([]string, 0, len(v.Items))
		for _, item := range v.Items {
			if item.Failure != nil {
				lines = append(lines, e.failure(*item.Failure))
				continue
			}
			lines = append(lines, e.style("Label", item.Number.Input)+"  "+e.formatted(*item.Number))
		}
		out = strings.Join(lines, "\n")
		if len(v.Stats) > 0 {
			table, err := e.stats(Stats{Samples: v.Stats})
			if err != nil {
				return err
			}
			out += "\n\n" + table
		}
	case Countries:
		table, err := e.countries(v)
		if err != nil {
			return err
		}
		out = table
	case Check:
		out = e.check(v)
	case Stats:
		table, err := e.stats(v)
		if err != nil {
			return err
		}
		out = table
	default:
		return unsupported(v)
	}

	_, err := fmt.Fprintln(e.w, strings.TrimRight(out, "\n"))
	return err
}

// parts renders "+41 (0) 44 364 35 33" with each part styled
func (e *textEncoder) parts(n Number) string {
	parts := []string{e.style("Country", "+"+n.CountryCode)}
	if n.Trunk != "" {
		parts = append(parts, e.style("Trunk", "("+n.Trunk+")"))
	}
	if n.NDC != "" {
		parts = append(parts, e.style("NDC", n.NDC))
	}
	for _, g := range n.Groups {
		parts = append(parts, e.style("Group", g))
	}
	return strings.Join(parts, " ")
}

func (e *textEncoder) formatted(n Number) string {
	if n.Formatted != "" {
		return n.Formatted
	}
	return e.parts(n)
}

func (e *textEncoder) number(n Number) string {
	line := e.parts(n)
	if n.Country != "" {
		label := n.Country
		if n.ISO != "" {
			label += " (" + n.ISO + ")"
		}
		line += "  " + e.style("Label", label)
	}
	if n.Formatted != "" {
		line += "\n" + n.Formatted
	}
	return line
}

func (e *textEncoder) value(v Value) string {
	switch v.Value {
	case "true":
		return e.style("Success", v.Value)
	case "false":
		return e.style("Error", v.Value)
	default:
		return v.Value
	}
}

func (e *textEncoder) failure(f Failure) string {
	return e.style("Error", "error:") + " " + f.Input + ": " + f.Message
}

func (e *textEncoder) check(c Check) string {
	verdict := e.style("Success", "agrees")
	if !c.NDCAgrees {
		verdict = e.style("Error", "differs")
	}
	rows := [][2]string{
		{"e164", c.E164},
		{"valid", strconv.FormatBool(c.Valid)},
		{"region", c.Region},
		{"ndc", c.Decomposition.NDC + " / " + c.NDC + " " + verdict},
		{"libphonenumber", c.International},
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = e.style("Label", fmt.Sprintf("%-15s", row[0])) + row[1]
	}
	return strings.Join(lines, "\n")
}

func (e *textEncoder) countries(c Countries) (string, error) {
	data := pterm.TableData{{"Code", "Name", "ISO", "Trunk", "Rules"}}
	for _, row := range c.Countries {
		if row.Reserved {
			data = append(data, []string{row.Code, "reserved", "", "", ""})
			continue
		}
		data = append(data, []string{row.Code, row.Name, row.ISO, row.Trunk, strconv.Itoa(row.Rules)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func (e *textEncoder) stats(s Stats) (string, error) {
	data := pterm.TableData{{"Country", "Outcome", "Count"}}
	for _, sample := range s.Samples {
		country := sample.Country
		if country == "" {
			country = "-"
		}
		data = append(data, []string{country, sample.Outcome, strconv.FormatUint(sample.Count, 10)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
