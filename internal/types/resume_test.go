// Package types provides type definitions for structured data used throughout the ResumeForge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedResume_ContactPredicates(t *testing.T) {
	tests := []struct {
		name      string
		resume    *ParsedResume
		wantName  bool
		wantEmail bool
		wantPhone bool
	}{
		{
			name:   "nil resume",
			resume: nil,
		},
		{
			name:   "no personal details",
			resume: &ParsedResume{},
		},
		{
			name: "blank fields do not count",
			resume: &ParsedResume{
				PersonalDetails: &PersonalDetails{Name: "   ", Email: "", Phone: "\t"},
			},
		},
		{
			name: "all contact fields present",
			resume: &ParsedResume{
				PersonalDetails: &PersonalDetails{
					Name:  "Jane Smith",
					Email: "jane@example.com",
					Phone: "+1 555 0100",
				},
			},
			wantName:  true,
			wantEmail: true,
			wantPhone: true,
		},
		{
			name: "email only",
			resume: &ParsedResume{
				PersonalDetails: &PersonalDetails{Email: "jane@example.com"},
			},
			wantEmail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.resume.HasName())
			assert.Equal(t, tt.wantEmail, tt.resume.HasEmail())
			assert.Equal(t, tt.wantPhone, tt.resume.HasPhone())
		})
	}
}

func TestParsedResume_TechnicalSkills(t *testing.T) {
	var nilResume *ParsedResume
	assert.Nil(t, nilResume.TechnicalSkills())
	assert.Nil(t, (&ParsedResume{}).TechnicalSkills())

	resume := &ParsedResume{
		Skills: &Skills{Technical: []string{"Go", "Docker"}},
	}
	assert.Equal(t, []string{"Go", "Docker"}, resume.TechnicalSkills())
}

func TestParsedResume_AbsentSectionsStayAbsent(t *testing.T) {
	// A section the resume does not contain must not reappear as an empty
	// object after a round trip. Absence and empty are different states.
	jsonBytes, err := json.Marshal(&ParsedResume{
		PersonalDetails: &PersonalDetails{Name: "Jane Smith"},
	})
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), `"experience"`)
	assert.NotContains(t, string(jsonBytes), `"education"`)
	assert.NotContains(t, string(jsonBytes), `"skills"`)
	assert.NotContains(t, string(jsonBytes), `"projects"`)

	var parsed ParsedResume
	require.NoError(t, json.Unmarshal(jsonBytes, &parsed))
	assert.Nil(t, parsed.Skills)
	assert.Nil(t, parsed.Experience)

	// An explicitly empty skills section survives as empty, not absent
	var withEmpty ParsedResume
	require.NoError(t, json.Unmarshal([]byte(`{"skills": {}}`), &withEmpty))
	require.NotNil(t, withEmpty.Skills)
	assert.Empty(t, withEmpty.Skills.Technical)
}
