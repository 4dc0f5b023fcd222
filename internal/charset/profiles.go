package charset

// Preconfigured profiles. Lite covers Western scripts plus common symbols;
// Full adds multi-script coverage. Declaration order fixes symbol indexes,
// so entries must never be reordered once released.

var liteRanges = []Range{
	{Name: "ascii", Low: 0x0020, High: 0x007E},
	{Name: "latin-1", Low: 0x00A0, High: 0x00FF},
	{Name: "punctuation", Low: 0x2010, High: 0x2027},
	{Name: "currency", Low: 0x20A0, High: 0x20BF},
}

var fullRanges = append(liteRanges[:len(liteRanges):len(liteRanges)],
	Range{Name: "latin-ext-a", Low: 0x0100, High: 0x017F},
	Range{Name: "greek", Low: 0x0370, High: 0x03FF},
	Range{Name: "cyrillic", Low: 0x0400, High: 0x04FF},
	Range{Name: "hebrew", Low: 0x0590, High: 0x05F4},
	Range{Name: "arabic", Low: 0x0600, High: 0x06FF},
	Range{Name: "devanagari", Low: 0x0900, High: 0x097F},
	Range{Name: "hiragana", Low: 0x3040, High: 0x309F},
	Range{Name: "katakana", Low: 0x30A0, High: 0x30FF},
	Range{Name: "cjk", Low: 0x4E00, High: 0x9FFF},
)

// Lite is the Western-script profile.
var Lite = Profile{Name: "lite", Ranges: liteRanges}

// Full is the multi-script profile. Its ranges start with Lite's, so every
// Lite symbol keeps the same index in Full.
var Full = Profile{Name: "full", Ranges: fullRanges}

// Lookup resolves a preconfigured profile by name.
func Lookup(name string) (Profile, bool) {
	switch name {
	case "lite":
		return Lite, true
	case "full":
		return Full, true
	default:
		return Profile{}, false
	}
}

// Names lists the preconfigured profile names.
func Names() []string { return []string{"lite", "full"} }
