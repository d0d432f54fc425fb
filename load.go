package logger

import (
	"os"

	"github.com/goccy/go-yaml"
)

// fileConfig mirrors the YAML document accepted by [LoadFile].
// Pointer fields distinguish absent keys from zero values.
type fileConfig struct {
	Path       *string `yaml:"path"`
	Level      *string `yaml:"level"`
	TimeLayout *string `yaml:"time_layout"`
	Color      *bool   `yaml:"color"`
}

// LoadFile reads logger configuration from a YAML file and returns the
// corresponding functional options.
//
// The document may contain any of the keys "path", "level", "time_layout",
// and "color"; keys that are absent produce no option, so applying the
// result leaves the corresponding settings untouched. Level values are
// parsed with [ParseLevel].
//
//	path: /var/log/app.log
//	level: warning
//	time_layout: RFC3339
//	color: true
//
// Read and decode errors are returned to the caller.
func LoadFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f fileConfig

	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, err
	}

	var opts []Option

	if f.Path != nil {
		opts = append(opts, WithPath(*f.Path))
	}

	if f.Level != nil {
		opts = append(opts, WithLevel(ParseLevel(*f.Level)))
	}

	if f.TimeLayout != nil {
		opts = append(opts, WithTimeLayout(*f.TimeLayout))
	}

	if f.Color != nil {
		opts = append(opts, WithColor(*f.Color))
	}

	return opts, nil
}
