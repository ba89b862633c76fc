package prompts

import (
	"strings"
	"testing"
)

func TestBuildVisionPrompt(t *testing.T) {
	prompt := BuildVisionPrompt("Office tower, glass and steel.")

	if !strings.Contains(prompt, "Project context: Office tower, glass and steel.") {
		t.Error("Expected brief excerpt in prompt")
	}

	// Vocabulary substitution list must stay verbatim for consistent output
	vocabulary := []string{
		`"Curtain wall" not "glass wall system"`,
		`"Cladding" not "exterior covering"`,
		`"Timber" or "wood cladding" not just "wood"`,
		`"CMU" for concrete masonry units`,
		`"Low-E glass" for energy-efficient glazing`,
	}
	for _, term := range vocabulary {
		if !strings.Contains(prompt, term) {
			t.Errorf("Expected vocabulary entry %q in prompt", term)
		}
	}
}

func TestBuildVisionPromptDeterministic(t *testing.T) {
	a := BuildVisionPrompt("context")
	b := BuildVisionPrompt("context")
	if a != b {
		t.Error("Expected identical prompts for identical input")
	}
}

func TestBuildVisionPromptEmptyExcerpt(t *testing.T) {
	prompt := BuildVisionPrompt("")
	if !strings.Contains(prompt, "Project context: \n") {
		t.Error("Expected empty excerpt to be passed through")
	}
}

func TestBuildSpecPrompt(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		label       string
		contains    []string
		notContains []string
	}{
		{
			name:  "base sections only",
			opts:  Options{},
			label: "",
			contains: []string{
				"EXECUTIVE SUMMARY",
				"MATERIAL SPECIFICATIONS (organized by CSI MasterFormat divisions)",
				"MATERIAL ANALYSIS FROM VISUALIZATIONS:",
			},
			notContains: []string{
				"SUSTAINABILITY CONSIDERATIONS",
				"ALTERNATIVE MATERIALS",
				"IMPORTANT: Start the specification",
			},
		},
		{
			name:  "sustainability section",
			opts:  Options{IncludeSustainability: true},
			label: "",
			contains: []string{
				"SUSTAINABILITY CONSIDERATIONS",
				"Embodied carbon considerations",
			},
			notContains: []string{"ALTERNATIVE MATERIALS"},
		},
		{
			name:  "alternatives section",
			opts:  Options{IncludeAlternatives: true},
			label: "",
			contains: []string{
				"ALTERNATIVE MATERIALS",
				"Performance trade-offs",
			},
			notContains: []string{"SUSTAINABILITY CONSIDERATIONS"},
		},
		{
			name:  "both optional sections",
			opts:  Options{IncludeSustainability: true, IncludeAlternatives: true},
			label: "",
			contains: []string{
				"SUSTAINABILITY CONSIDERATIONS",
				"ALTERNATIVE MATERIALS",
			},
		},
		{
			name:  "per-image label",
			opts:  Options{},
			label: "facade.jpg",
			contains: []string{
				"MATERIAL ANALYSIS FROM IMAGE: facade.jpg",
				"# Material Specifications - facade.jpg",
				"Focus on materials clearly visible in this specific image.",
			},
			notContains: []string{"MATERIAL ANALYSIS FROM VISUALIZATIONS:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildSpecPrompt("the brief", "the analysis", tt.opts, tt.label)

			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("Expected prompt to contain %q", want)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(prompt, unwanted) {
					t.Errorf("Expected prompt to not contain %q", unwanted)
				}
			}
		})
	}
}

func TestBuildSpecPromptDivisions(t *testing.T) {
	prompt := BuildSpecPrompt("brief", "analysis", Options{}, "")

	divisions := []string{
		"Division 03: Concrete",
		"Division 04: Masonry",
		"Division 05: Metals",
		"Division 06: Wood, Plastics, and Composites",
		"Division 07: Thermal and Moisture Protection",
		"Division 08: Openings (glazing systems)",
		"Division 09: Finishes",
		"Division 10: Specialties",
	}
	for _, div := range divisions {
		if !strings.Contains(prompt, div) {
			t.Errorf("Expected division %q in prompt", div)
		}
	}
}

func TestBuildSpecPromptIncludesBriefAndAnalysis(t *testing.T) {
	prompt := BuildSpecPrompt("PROJECT: Riverside Pavilion", "Timber cladding, high prominence", Options{}, "")

	if !strings.Contains(prompt, "PROJECT: Riverside Pavilion") {
		t.Error("Expected full brief in prompt")
	}
	if !strings.Contains(prompt, "Timber cladding, high prominence") {
		t.Error("Expected analysis text in prompt")
	}
}
