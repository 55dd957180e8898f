// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders a Resolution for the terminal or for other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doicite/pkg/types"
)

// indent prefixes every value line of the text report.
const indent = "     "

// CheckFormat reports an error for formats Render does not support.
func CheckFormat(format types.OutputFormat) error {
	switch format {
	case types.OutputText, types.OutputYAML, types.OutputJSON, "":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want text, yaml, or json)", format)
}

// Render writes res to w in format. An empty format means text.
func Render(w io.Writer, res types.Resolution, format types.OutputFormat) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	switch format {
	case types.OutputText, "":
		return renderText(w, res)
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			enc.Close()
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case types.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return nil
}

// renderText writes the human-readable layout: URL (when one was given),
// optional candidate table, DOI, then the citation or an error line.
func renderText(w io.Writer, res types.Resolution) error {
	var b strings.Builder

	if res.URL != "" {
		fmt.Fprintf(&b, "URL:\n%s%s\n", indent, res.URL)
	}
	if len(res.Candidates) > 0 {
		b.WriteString("Candidates:\n")
		for _, c := range res.Candidates {
			fmt.Fprintf(&b, "%s%5.2f  %s  (%s)\n", indent, c.Score, c.DOI, strings.Join(c.Sources, ", "))
		}
	}

	switch res.Status {
	case types.StatusNoDOI:
		b.WriteString("error: no DOI found.\n")
	case types.StatusCitationFailed:
		fmt.Fprintf(&b, "DOI:\n%s%s\n", indent, res.DOI)
		fmt.Fprintf(&b, "Error:\n%s%s is valid doi but is not found in database or style is invalid.\n", indent, res.DOI)
	default:
		fmt.Fprintf(&b, "DOI:\n%s%s\n", indent, res.DOI)
		fmt.Fprintf(&b, "Citation:\n%s%s\n", indent, res.Citation)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
