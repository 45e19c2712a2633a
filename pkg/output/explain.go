package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/sinsoku/phony/pkg/format"
	"github.com/sinsoku/phony/pkg/phony"
)

// ExplainMarkdown describes how res was decomposed
func ExplainMarkdown(res phony.Result) string {
	d := res.Decomposition
	rule := res.Rule()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", format.Format(rule, d, format.Options{}))
	if rule != nil && rule.Name() != "" {
		fmt.Fprintf(&b, "%s (%s), country code **%s**.\n\n", rule.Name(), rule.ISO(), d.CountryCode)
	}

	b.WriteString("| Part | Digits |\n|---|---|\n")
	fmt.Fprintf(&b, "| Country code | %s |\n", d.CountryCode)
	if d.Trunk != "" {
		fmt.Fprintf(&b, "| Trunk | %s |\n", d.Trunk)
	}
	if d.NDC != "" {
		fmt.Fprintf(&b, "| NDC | %s |\n", d.NDC)
	}
	for i, g := range d.Groups {
		fmt.Fprintf(&b, "| Group %d | %s |\n", i+1, g)
	}

	if rule == nil {
		return b.String()
	}

	seqs := rule.Alternation().Sequences()
	b.WriteString("\n## Rules\n\n")
	for i, seq := range seqs {
		marker := ""
		if i == d.Rule {
			marker = " **(matched)**"
		}
		fmt.Fprintf(&b, "%d. `%s`%s\n", i+1, seq, marker)
	}

	if t := rule.Trunk(); t != nil {
		fmt.Fprintf(&b, "\nTrunk: `%s`\n", t)
	}
	if vs := rule.Validators(); len(vs) > 0 {
		names := make([]string, len(vs))
		for i, v := range vs {
			names[i] = "`" + v.String() + "`"
		}
		fmt.Fprintf(&b, "\nInvalid NDCs: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}

// Explain renders the breakdown of res for a terminal
func Explain(w io.Writer, res phony.Result, opts Options) error {
	style := glamour.WithStandardStyle("notty")
	if !opts.NoColor && ColorEnabled(w) {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return err
	}
	out, err := renderer.Render(ExplainMarkdown(res))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
