package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const profilePromptPreamble = `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract a structured candidate profile from resume text that has
already been grouped into sections. Preserve the exact wording of names, titles,
companies and dates. Leave any field you cannot find empty rather than guessing.`

// ExtractProfile asks the LLM to turn grouped resume sections into a
// structured profile. The response must validate as a ResumeProfile before it
// is returned.
func ExtractProfile(ctx context.Context, client Client, doc *types.ParsedDocument) (*types.ResumeProfile, error) {
	if doc == nil || len(doc.GroupedSections) == 0 {
		return nil, fmt.Errorf("document has no grouped sections to extract from")
	}

	prompt := buildProfilePrompt(doc)
	raw, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("profile extraction failed: %w", err)
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("profile response is not valid JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile response failed validation: %w", err)
	}

	return &profile, nil
}

// buildProfilePrompt renders the grouped sections with their detected names so
// the model sees the document the way the section detector understood it.
func buildProfilePrompt(doc *types.ParsedDocument) string {
	var sb strings.Builder
	sb.WriteString(profilePromptPreamble)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString(`  "contact": {"full_name", "first_name", "last_name", "email", "phone", "linkedin", "github", "website", "location": {"city", "state", "country"}}` + "\n")
	sb.WriteString(`  "summary": string` + "\n")
	sb.WriteString(`  "experience": [{"job_title", "employer", "location", "start_date", "end_date", "is_current", "description"}]` + "\n")
	sb.WriteString(`  "education": [{"school_name", "degree_name", "field_of_study", "location", "graduation_date", "gpa"}]` + "\n")
	sb.WriteString(`  "skills": [{"name", "category", "proficiency_level"}]` + "\n")
	sb.WriteString(`  "certifications": [{"name", "issuer", "credential_id"}]` + "\n")
	sb.WriteString(`  "languages": [{"language", "proficiency"}]` + "\n\n")
	sb.WriteString("Dates use YYYY-MM; \"full_name\" is required; use empty strings for unknown fields.\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Resume sections:\n")
	for _, group := range doc.GroupedSections {
		sb.WriteString(fmt.Sprintf("\n=== %s ===\n", strings.ToUpper(string(group.Section))))
		sb.WriteString(group.CombinedText())
		sb.WriteString("\n")
	}

	return sb.String()
}
