package reportfmt

// PrettyOpts configures pretty report output.
type PrettyOpts struct {
	Color       bool
	ShowGrid    bool
	ShowTokens  bool
	ShowTimings bool
	MaxTokens   int // token listing cutoff, 0 = unlimited
}

// JSONOpts configures JSON report output.
type JSONOpts struct {
	IncludeChecks  bool
	IncludeWindows bool
	IncludeTimings bool
}
