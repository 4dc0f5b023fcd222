package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tessera/internal/charset"
	"tessera/internal/encode"
	"tessera/internal/eval"
)

// addRequestFlags registers the input-selection flags shared by eval and
// derive.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "decimal", "input mode (decimal|binary|text)")
	cmd.Flags().String("charset", "lite", "charset profile (lite|full)")
	cmd.Flags().String("charset-file", "", "custom charset profile TOML file")
	cmd.Flags().String("encoding", "bijective", "text encoding scheme (classic|bijective)")
	cmd.Flags().Bool("wrap", false, "wrap-around adjacency (toroidal grid)")
}

// requestFromFlags builds an eval.Request from the shared flags. The input
// collection layer strips an optional 0b prefix in binary mode; the
// encoder itself stays strict.
func requestFromFlags(cmd *cobra.Command, value string) (eval.Request, error) {
	modeFlag, err := cmd.Flags().GetString("mode")
	if err != nil {
		return eval.Request{}, fmt.Errorf("failed to get mode flag: %w", err)
	}
	mode, err := encode.ParseMode(modeFlag)
	if err != nil {
		return eval.Request{}, err
	}

	encodingFlag, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return eval.Request{}, fmt.Errorf("failed to get encoding flag: %w", err)
	}
	scheme, err := encode.ParseScheme(encodingFlag)
	if err != nil {
		return eval.Request{}, err
	}

	profile, err := profileFromFlags(cmd)
	if err != nil {
		return eval.Request{}, err
	}

	wrap, err := cmd.Flags().GetBool("wrap")
	if err != nil {
		return eval.Request{}, fmt.Errorf("failed to get wrap flag: %w", err)
	}

	if mode == encode.ModeBinary {
		trimmed := strings.TrimSpace(value)
		if len(trimmed) > 2 && (strings.HasPrefix(trimmed, "0b") || strings.HasPrefix(trimmed, "0B")) {
			value = trimmed[2:]
		}
	}

	return eval.Request{
		Mode:    mode,
		Value:   value,
		Profile: profile,
		Scheme:  scheme,
		Wrap:    wrap,
	}, nil
}

func profileFromFlags(cmd *cobra.Command) (charset.Profile, error) {
	file, err := cmd.Flags().GetString("charset-file")
	if err != nil {
		return charset.Profile{}, fmt.Errorf("failed to get charset-file flag: %w", err)
	}
	if file != "" {
		return charset.LoadProfile(file)
	}
	name, err := cmd.Flags().GetString("charset")
	if err != nil {
		return charset.Profile{}, fmt.Errorf("failed to get charset flag: %w", err)
	}
	profile, ok := charset.Lookup(name)
	if !ok {
		return charset.Profile{}, fmt.Errorf("unknown charset profile %q (expected %s)", name, strings.Join(charset.Names(), "|"))
	}
	return profile, nil
}
