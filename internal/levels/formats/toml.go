package formats

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ParseTOML parses a TOML level file. Unknown keys are an error.
func ParseTOML(data []byte) (Level, error) {
	var fl fileLevel
	md, err := toml.Decode(string(data), &fl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Level{}, fmt.Errorf("toml decode: unknown keys %v", undecoded)
	}
	return fl.convert()
}
