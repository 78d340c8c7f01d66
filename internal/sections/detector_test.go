package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func narrative(text string) types.Fragment {
	return types.Fragment{Text: text, Category: types.CategoryNarrativeText}
}

func title(text string) types.Fragment {
	return types.Fragment{Text: text, Category: types.CategoryTitle}
}

func sampleResume() []types.Fragment {
	return []types.Fragment{
		narrative("Jane Doe"),
		{Text: "jane@example.com", Category: types.CategoryEmailAddress},
		title("EXPERIENCE"),
		narrative("Built the payments platform over three release cycles."),
		narrative("Led the migration away from the legacy monolith."),
		title("Skills"),
		{Text: "Go", Category: types.CategoryListItem},
		{Text: "PostgreSQL", Category: types.CategoryListItem},
	}
}

func TestGroup_EveryFragmentAssignedOnce(t *testing.T) {
	fragments := sampleResume()
	groups, _ := Group(fragments)

	total := 0
	for _, g := range groups {
		total += len(g.Fragments)
	}
	assert.Equal(t, len(fragments), total)
}

func TestGroup_ContactOverride(t *testing.T) {
	// Contact details interleaved with experience content still land in the
	// contact group.
	fragments := []types.Fragment{
		title("EXPERIENCE"),
		narrative("Built the payments platform over three release cycles."),
		{Text: "jane@example.com", Category: types.CategoryEmailAddress},
		narrative("Led the migration away from the legacy monolith."),
	}

	groups, _ := Group(fragments)

	var contact, experience *types.SectionGroup
	for i := range groups {
		switch groups[i].Section {
		case types.SectionContact:
			contact = &groups[i]
		case types.SectionExperience:
			experience = &groups[i]
		}
	}

	require.NotNil(t, contact)
	require.NotNil(t, experience)
	require.Len(t, contact.Fragments, 1)
	assert.Equal(t, "jane@example.com", contact.Fragments[0].Text)
	assert.Len(t, experience.Fragments, 3)
}

func TestGroup_FirstAppearanceOrder(t *testing.T) {
	groups, _ := Group(sampleResume())

	var order []types.ResumeSection
	for _, g := range groups {
		order = append(order, g.Section)
	}
	assert.Equal(t, []types.ResumeSection{
		types.SectionUnknown,
		types.SectionContact,
		types.SectionExperience,
		types.SectionSkills,
	}, order)
}

func TestGroup_HeaderConfidenceBonus(t *testing.T) {
	groups, _ := Group(sampleResume())

	var experience *types.SectionGroup
	for i := range groups {
		if groups[i].Section == types.SectionExperience {
			experience = &groups[i]
		}
	}
	require.NotNil(t, experience)
	assert.InDelta(t, 0.8, experience.Confidence, 1e-9)
}

func TestGroup_SkillsListConfidence(t *testing.T) {
	groups, _ := Group(sampleResume())

	var skills *types.SectionGroup
	for i := range groups {
		if groups[i].Section == types.SectionSkills {
			skills = &groups[i]
		}
	}
	require.NotNil(t, skills)
	assert.GreaterOrEqual(t, skills.Confidence, 0.7)
}

func TestGroup_ConfidenceClamped(t *testing.T) {
	groups, _ := Group(sampleResume())
	for _, g := range groups {
		assert.LessOrEqual(t, g.Confidence, 1.0)
		assert.GreaterOrEqual(t, g.Confidence, 0.0)
	}
}

func TestGroup_MissingContactWarning(t *testing.T) {
	fragments := []types.Fragment{
		title("EXPERIENCE"),
		narrative("Built the payments platform over three release cycles."),
	}

	_, warnings := Group(fragments)
	assert.Contains(t, warnings, "no contact information section detected")
}

func TestGroup_MissingExperienceWarning(t *testing.T) {
	fragments := []types.Fragment{
		{Text: "jane@example.com", Category: types.CategoryEmailAddress},
	}

	_, warnings := Group(fragments)
	assert.Contains(t, warnings, "no work experience section detected")
}

func TestGroup_LowConfidenceWarning(t *testing.T) {
	// Content before any header accumulates in the unknown group at base
	// confidence, which is below the reporting floor.
	fragments := []types.Fragment{
		narrative("Seasoned platform builder across several product areas."),
	}

	_, warnings := Group(fragments)

	found := false
	for _, w := range warnings {
		if w == "low confidence in section classification: unknown" {
			found = true
		}
	}
	assert.True(t, found, "expected low-confidence warning for unknown group, got %v", warnings)
}

func TestGroup_Deterministic(t *testing.T) {
	fragments := sampleResume()
	first, firstWarnings := Group(fragments)
	for i := 0; i < 20; i++ {
		next, nextWarnings := Group(fragments)
		require.Equal(t, first, next)
		require.Equal(t, firstWarnings, nextWarnings)
	}
}

func TestDetectHeader_Vocabulary(t *testing.T) {
	cases := map[string]types.ResumeSection{
		"EXPERIENCE":       types.SectionExperience,
		"Work History":     types.SectionExperience,
		"Education":        types.SectionEducation,
		"Technical Skills": types.SectionSkills,
		"Summary:":         types.SectionSummary,
		"Certifications":   types.SectionCertifications,
		"Random Heading":   types.SectionUnknown,
	}
	for text, want := range cases {
		f := title(text)
		assert.Equal(t, want, DetectHeader(&f), "text %q", text)
	}
}

func TestDetectHeader_IgnoresListItems(t *testing.T) {
	f := types.Fragment{Text: "Experience", Category: types.CategoryListItem}
	assert.Equal(t, types.SectionUnknown, DetectHeader(&f))
}

func TestDetectHeader_RejectsLongText(t *testing.T) {
	f := title("Experience working with distributed systems and large scale data pipelines")
	assert.Equal(t, types.SectionUnknown, DetectHeader(&f))
}

func TestIsContactFragment_ByCategory(t *testing.T) {
	f := types.Fragment{Text: "555-123-4567", Category: types.CategoryPhoneNumber}
	assert.True(t, IsContactFragment(&f))
}

func TestIsContactFragment_ByPattern(t *testing.T) {
	f := narrative("reach me at jane@example.com")
	assert.True(t, IsContactFragment(&f))

	plain := narrative("built the payments platform")
	assert.False(t, IsContactFragment(&plain))
}
