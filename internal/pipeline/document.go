package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Separator joins per-image specification bodies in the combined document.
const Separator = "\n\n---\n\n"

// Downstream consumers match on the header and footer text, so both must
// stay byte-exact.
const (
	headerFormat = `# Material Specifications
*Generated from design visualizations - %s*

*This document contains material specifications for each analyzed image. Each section begins with the image filename as a prominent header.*

---
`
	// The line break after "visualizations." carries a trailing space;
	// concatenation keeps editors from trimming it away.
	footer = "\n\n---\n" +
		"*Note: These specifications are preliminary and based on design intent visualizations. " + "\n" +
		"Verify all material selections with manufacturers and project requirements.*\n"
)

// Header returns the fixed document header stamped with the generation time.
func Header(ts time.Time) string {
	return fmt.Sprintf(headerFormat, ts.Format("January 02, 2006 at 03:04 PM"))
}

// Footer returns the fixed document footer.
func Footer() string {
	return footer
}

// BuildDocument assembles the combined document: header, specification
// bodies in order joined by the separator, footer. A pure function of its
// inputs; never partially written.
func BuildDocument(specs []Specification, ts time.Time) string {
	body := ""
	for i, spec := range specs {
		if i > 0 {
			body += Separator
		}
		body += spec.Body
	}
	return Header(ts) + body + footer
}

// SaveDocument writes the combined document under outputDir, creating the
// directory if needed. The filename carries the generation timestamp.
func SaveDocument(document, outputDir string, ts time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := fmt.Sprintf("material_specifications_%s.md", ts.Format("20060102_150405"))
	path := filepath.Join(outputDir, filename)

	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("could not save specification file: %w", err)
	}
	return path, nil
}
