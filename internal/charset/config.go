package charset

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

var (
	// ErrProfileNameMissing indicates a profile file without a name.
	ErrProfileNameMissing = errors.New("missing profile name")
	// ErrProfileRangesMissing indicates a profile file without ranges.
	ErrProfileRangesMissing = errors.New("missing [[range]] entries")
)

type profileFile struct {
	Name   string       `toml:"name"`
	Ranges []rangeEntry `toml:"range"`
}

type rangeEntry struct {
	Name string `toml:"name"`
	Low  int64  `toml:"low"`
	High int64  `toml:"high"`
}

// LoadProfile parses a custom charset profile from a TOML file.
//
// Expected layout:
//
//	name = "custom"
//
//	[[range]]
//	name = "ascii"
//	low = 0x20
//	high = 0x7e
func LoadProfile(path string) (Profile, error) {
	var cfg profileFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	name := strings.TrimSpace(cfg.Name)
	if !meta.IsDefined("name") || name == "" {
		return Profile{}, fmt.Errorf("%s: %w", path, ErrProfileNameMissing)
	}
	if len(cfg.Ranges) == 0 {
		return Profile{}, fmt.Errorf("%s: %w", path, ErrProfileRangesMissing)
	}
	p := Profile{Name: name, Ranges: make([]Range, 0, len(cfg.Ranges))}
	for i, e := range cfg.Ranges {
		low, err := safecast.Conv[int32](e.Low)
		if err != nil {
			return Profile{}, fmt.Errorf("%s: range %d: low %d is not a code point: %w", path, i, e.Low, err)
		}
		high, err := safecast.Conv[int32](e.High)
		if err != nil {
			return Profile{}, fmt.Errorf("%s: range %d: high %d is not a code point: %w", path, i, e.High, err)
		}
		if low < 0 || high < low {
			return Profile{}, fmt.Errorf("%s: range %d: invalid bounds [%d, %d]", path, i, low, high)
		}
		p.Ranges = append(p.Ranges, Range{Name: e.Name, Low: rune(low), High: rune(high)})
	}
	return p, nil
}
