package level

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

var ErrUnknownKey = errors.New("unknown key in level file")

type tableFile struct {
	Level []Settings `toml:"level"`
}

// Load reads a TOML table override, one [[level]] block per level starting at 1
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read level file")
	}
	t, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return t, nil
}

// Parse decodes a TOML table from memory
func Parse(data []byte) (*Table, error) {
	var f tableFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(err, "decode level table")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Wrap(ErrUnknownKey, strings.Join(keys, ", "))
	}
	return New(f.Level)
}
