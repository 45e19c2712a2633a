package definitions

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sinsoku/phony/pkg/errors"
	"github.com/sinsoku/phony/pkg/logging"
	"github.com/sinsoku/phony/pkg/registry"
)

//go:embed data/*.toml data/*.yaml
var builtin embed.FS

// Format is a definitions document encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the document format from a file extension
func FormatFor(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrDefinitionLoad, "unsupported definitions file %q", name).
			WithDetail("path", name)
	}
}

// Parse decodes a definitions document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrDefinitionLoad, "decoding toml definitions")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, errors.ErrDefinitionLoad, "decoding yaml definitions")
		}
	default:
		return nil, errors.Newf(errors.ErrDefinitionLoad, "unsupported definitions format %q", format)
	}
	return &doc, nil
}

// Register builds every country of doc into countries and returns how many
// codes were registered or reserved. The first failure stops loading.
func Register(countries *registry.Countries, doc *Document) (int, error) {
	n := 0
	for _, c := range doc.Countries {
		if c.Reserved {
			if err := countries.Reserve(c.Code); err != nil {
				return n, err
			}
			n++
			continue
		}

		rule, err := Build(c)
		if err != nil {
			return n, err
		}
		if err := countries.Register(c.Code, rule); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// LoadFile parses the definitions file at p and registers its countries
func LoadFile(countries *registry.Countries, p string) (int, error) {
	format, err := FormatFor(p)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrDefinitionLoad, "reading %s", p).WithDetail("path", p)
	}
	return load(countries, p, data, format)
}

// Builtin lists the names of the embedded definition sets
func Builtin() []string {
	entries, _ := fs.ReadDir(builtin, "data")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// LoadBuiltin registers the named embedded sets, or all of them when no
// name is given.
func LoadBuiltin(countries *registry.Countries, names ...string) (int, error) {
	if len(names) == 0 {
		names = Builtin()
	}

	entries, err := fs.ReadDir(builtin, "data")
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrInternal, "reading embedded definitions")
	}
	files := make(map[string]string, len(entries))
	for _, e := range entries {
		files[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = path.Join("data", e.Name())
	}

	total := 0
	for _, name := range names {
		file, ok := files[name]
		if !ok {
			return total, errors.Newf(errors.ErrNotFound, "no built-in definitions named %q", name).
				WithDetail("name", name)
		}
		format, err := FormatFor(file)
		if err != nil {
			return total, err
		}
		data, err := builtin.ReadFile(file)
		if err != nil {
			return total, errors.Wrapf(err, errors.ErrInternal, "reading %s", file)
		}
		n, err := load(countries, "builtin:"+name, data, format)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func load(countries *registry.Countries, source string, data []byte, format Format) (int, error) {
	logger := logging.GetLogger("definitions")
	done := logging.LogOperationStart(logger, "load definitions")
	defer done()

	doc, err := Parse(data, format)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrDefinitionLoad, "loading %s", source).WithDetail("source", source)
	}
	n, err := Register(countries, doc)
	if err != nil {
		return n, err
	}

	logger.Debug().Str("source", source).Int("countries", n).Msg("loaded definitions")
	return n, nil
}
