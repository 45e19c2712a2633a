// Package output prints phony results as styled text, JSON, YAML or XML.
package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/registry"
)

// Encoder writes views (Number, Value, Failure, Batch, Countries, Check,
// Stats) in one encoding
type Encoder interface {
	Encode(v any) error
}

// Options controls encoders
type Options struct {
	// NoColor disables styling of text output
	NoColor bool

	// StylesPath overrides the embedded text styles
	StylesPath string
}

// Factory creates an encoder writing to w
type Factory func(w io.Writer, opts Options) (Encoder, error)

var encoders = registry.New[Factory]()

func init() {
	registry.MustRegister(encoders, "text", newTextEncoder)
	registry.MustRegister(encoders, "json", newJSONEncoder)
	registry.MustRegister(encoders, "yaml", newYAMLEncoder)
	registry.MustRegister(encoders, "xml", newXMLEncoder)
}

// Names lists the available encodings
func Names() []string {
	return encoders.List()
}

// New creates the named encoder
func New(name string, w io.Writer, opts Options) (Encoder, error) {
	factory, err := encoders.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "unknown output %q", name).
			WithDetail("output", name)
	}
	return factory(w, opts)
}

// ColorEnabled reports whether w is a terminal that accepts color.
// NO_COLOR disables color everywhere.
func ColorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func unsupported(v any) error {
	return errors.Newf(errors.ErrInternal, "cannot encode %T", v)
}
