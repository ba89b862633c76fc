// Package prompts builds the prompt strings sent to the vision and
// specification models. Builders are pure functions of their inputs so
// identical runs produce identical prompts.
package prompts

import (
	"fmt"
	"strings"
)

// Options toggles the optional sections of a specification document.
// Set once per run and applied to every generated specification.
type Options struct {
	IncludeSustainability bool `json:"include_sustainability"`
	IncludeAlternatives   bool `json:"include_alternatives"`
}

// CSIDivisions maps CSI MasterFormat division numbers to their names.
// These organize materials by standard architectural specification divisions.
var CSIDivisions = map[string]string{
	"03": "Concrete",
	"04": "Masonry",
	"05": "Metals",
	"06": "Wood, Plastics, and Composites",
	"07": "Thermal and Moisture Protection",
	"08": "Openings",
	"09": "Finishes",
	"10": "Specialties",
}

// DivisionOrder lists the division numbers in specification order.
var DivisionOrder = []string{"03", "04", "05", "06", "07", "08", "09", "10"}

// BuildVisionPrompt returns the prompt for the vision model to identify
// materials in one architectural visualization. briefExcerpt is a short
// excerpt from the project brief for context; the vocabulary substitution
// list is fixed so that analysis output stays consistent across runs.
func BuildVisionPrompt(briefExcerpt string) string {
	return fmt.Sprintf(`Analyze this architectural visualization and identify the materials used.

Project context: %s

For each material you identify, provide:
1. Material type (use standard architectural terms: glass, concrete, wood, metal, masonry, etc.)
2. Visual characteristics (color, texture, finish, pattern)
3. Approximate coverage/prominence (high/medium/low)
4. Specific architectural observations (e.g., "curtain wall system", "timber cladding", "exposed concrete structure")

Use professional architectural terminology:
- "Curtain wall" not "glass wall system"
- "Cladding" not "exterior covering"
- "Timber" or "wood cladding" not just "wood"
- "CMU" for concrete masonry units
- "Low-E glass" for energy-efficient glazing

Format as a structured list with clear material categories.`, briefExcerpt)
}

// BuildSpecPrompt returns the prompt for the text model to write a material
// specification document from a material analysis. When imageLabel is
// non-empty the model is instructed to open its response with a heading
// naming that image and to scope the document to materials visible in it.
func BuildSpecPrompt(brief, analysis string, opts Options, imageLabel string) string {
	var b strings.Builder

	if imageLabel != "" {
		fmt.Fprintf(&b, `You are an architectural specification writer. Based on the material analysis below,
create a professional material specification document for this specific visualization.

PROJECT BRIEF:
%s

MATERIAL ANALYSIS FROM IMAGE: %s
%s

IMPORTANT: Start the specification with a prominent header showing the image name:
# Material Specifications - %s

Then generate a specification document with these sections:
`, brief, imageLabel, analysis, imageLabel)
	} else {
		fmt.Fprintf(&b, `You are an architectural specification writer. Based on the material analysis below,
create a professional material specification document.

PROJECT BRIEF:
%s

MATERIAL ANALYSIS FROM VISUALIZATIONS:
%s

Generate a specification document with these sections:
`, brief, analysis)
	}

	scope := ""
	if imageLabel != "" {
		scope = " visible in this image"
	}

	fmt.Fprintf(&b, `
1. EXECUTIVE SUMMARY
   - Overview of material palette
   - Design intent and material selection rationale
   - Key material characteristics

2. MATERIAL SPECIFICATIONS (organized by CSI MasterFormat divisions)
   For each material category%s, provide:
   - Material description (use standard architectural terminology)
   - Performance characteristics
   - Typical applications in this project type
   - Installation considerations
   - Visual/esthetic qualities observed

   Organize materials by CSI divisions:
`, scope)

	for _, num := range DivisionOrder {
		name := CSIDivisions[num]
		if num == "08" {
			name += " (glazing systems)"
		}
		fmt.Fprintf(&b, "   - Division %s: %s\n", num, name)
	}

	if opts.IncludeSustainability {
		b.WriteString(`
3. SUSTAINABILITY CONSIDERATIONS
   - Embodied carbon considerations
   - Recyclability and lifecycle impacts
   - Energy performance implications
   - Sustainable sourcing options
`)
	}

	if opts.IncludeAlternatives {
		b.WriteString(`
4. ALTERNATIVE MATERIALS
   - Comparable material options
   - Cost considerations
   - Performance trade-offs
   - Aesthetic alternatives
`)
	}

	b.WriteString(`
Use professional specification language appropriate for architectural documentation.
Acknowledge that these are preliminary specifications based on design intent visualizations.
Include appropriate disclaimers about verifying material selections with manufacturers.

Format in markdown with clear headers, sections, and bullet points.
Be specific but acknowledge limitations of visual analysis.`)

	if imageLabel != "" {
		b.WriteString(`
Focus on materials clearly visible in this specific image.`)
	}

	return b.String()
}
