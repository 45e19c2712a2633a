package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

type jsonEncoder struct {
	encoder *json.Encoder
}

func newJSONEncoder(w io.Writer, _ Options) (Encoder, error) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonEncoder{encoder: encoder}, nil
}

func (e *jsonEncoder) Encode(v any) error {
	return e.encoder.Encode(v)
}

type yamlEncoder struct {
	w io.Writer
}

func newYAMLEncoder(w io.Writer, _ Options) (Encoder, error) {
	return &yamlEncoder{w: w}, nil
}

// Encode writes one document per call
func (e *yamlEncoder) Encode(v any) error {
	encoder := yaml.NewEncoder(e.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
