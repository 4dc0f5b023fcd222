package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"tessera/internal/charset"
)

var charsetsCmd = &cobra.Command{
	Use:   "charsets [profile]",
	Short: "List charset profiles or dump a profile's symbols",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCharsets,
}

func init() {
	charsetsCmd.Flags().String("charset-file", "", "dump a custom charset profile TOML file instead")
	charsetsCmd.Flags().Int("columns", 16, "symbols per row when dumping")
}

func runCharsets(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("charset-file")
	if err != nil {
		return fmt.Errorf("failed to get charset-file flag: %w", err)
	}

	var profile charset.Profile
	switch {
	case file != "":
		profile, err = charset.LoadProfile(file)
		if err != nil {
			return err
		}
	case len(args) == 1:
		var ok bool
		profile, ok = charset.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown charset profile %q (expected %s)", args[0], strings.Join(charset.Names(), "|"))
		}
	default:
		return listProfiles(cmd)
	}

	columns, err := cmd.Flags().GetInt("columns")
	if err != nil {
		return fmt.Errorf("failed to get columns flag: %w", err)
	}
	if columns < 1 {
		columns = 1
	}
	return dumpProfile(cmd, profile, columns)
}

func listProfiles(cmd *cobra.Command) error {
	for _, name := range charset.Names() {
		profile, _ := charset.Lookup(name)
		table := charset.Build(profile)
		fmt.Fprintf(cmd.OutOrStdout(), "%-6s %5d symbols, %d range(s)\n", name, table.Len(), len(profile.Ranges))
	}
	return nil
}

func dumpProfile(cmd *cobra.Command, profile charset.Profile, columns int) error {
	out := cmd.OutOrStdout()
	table := charset.Build(profile)
	fmt.Fprintf(out, "profile %s: %d symbols (base k=%d)\n", profile.Name, table.Len(), table.Len())
	for _, r := range profile.Ranges {
		fmt.Fprintf(out, "  %-12s U+%04X..U+%04X\n", r.Name, r.Low, r.High)
	}
	fmt.Fprintln(out)

	symbols := table.Symbols()
	for row := 0; row < len(symbols); row += columns {
		end := row + columns
		if end > len(symbols) {
			end = len(symbols)
		}
		var line strings.Builder
		fmt.Fprintf(&line, "%5d: ", row)
		for _, cp := range symbols[row:end] {
			// Double-width symbols get a full cell; everything else is padded.
			line.WriteString(runewidth.FillRight(displaySymbol(cp), 2))
			line.WriteByte(' ')
		}
		fmt.Fprintln(out, line.String())
	}
	return nil
}

// displaySymbol makes the two appended whitespace symbols visible.
func displaySymbol(cp rune) string {
	switch cp {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	default:
		return string(cp)
	}
}
