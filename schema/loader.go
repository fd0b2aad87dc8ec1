package schema

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/relayspeak/tscommands/errors"
)

type declarations struct {
	Fields   []*Field   `toml:"fields"`
	Messages []*Message `toml:"messages"`
	Notifies []*Notify  `toml:"notifies"`
}

// Parse builds a Registry from TOML declaration text.
func Parse(data []byte) (*Registry, error) {
	var decl declarations
	if err := toml.Unmarshal(data, &decl); err != nil {
		return nil, errors.Load("decode declarations", err)
	}
	return NewRegistry(decl.Fields, decl.Messages, decl.Notifies)
}

// Load reads and parses a TOML declaration file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Load("read declarations", err)
	}
	return Parse(data)
}
