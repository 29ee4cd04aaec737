package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/ShantanuRaghuwanshi/ResumeForge/internal/types"
)

// referenceVocabulary is the fixed list of terms scanned for in job text,
// technical skills first, then general competencies. Order is preserved in
// the gap output, so keep additions grouped.
var referenceVocabulary = []string{
	"Python",
	"Java",
	"JavaScript",
	"TypeScript",
	"Golang",
	"C++",
	"SQL",
	"React",
	"Angular",
	"Node.js",
	"AWS",
	"Azure",
	"GCP",
	"Docker",
	"Kubernetes",
	"Terraform",
	"Git",
	"CI/CD",
	"REST API",
	"GraphQL",
	"Machine Learning",
	"Data Analysis",
	"Agile",
	"Scrum",
	"Leadership",
	"Communication",
	"Problem Solving",
	"Teamwork",
	"Project Management",
	"Mentoring",
}

// KeywordGaps returns the vocabulary terms that appear in the job text but
// not in the resume, in vocabulary order. Matching is a case-insensitive
// substring check on both sides.
func KeywordGaps(jobText string, resume *types.ParsedResume) []string {
	job := strings.ToLower(jobText)
	haystack := strings.ToLower(serializeResume(resume))

	var missing []string
	for _, term := range referenceVocabulary {
		needle := strings.ToLower(term)
		if !strings.Contains(job, needle) {
			continue
		}
		if !strings.Contains(haystack, needle) {
			missing = append(missing, term)
		}
	}

	return missing
}

// serializeResume flattens the parsed resume into one searchable string
func serializeResume(resume *types.ParsedResume) string {
	if resume == nil {
		return ""
	}
	data, err := json.Marshal(resume)
	if err != nil {
		return ""
	}
	return string(data)
}
