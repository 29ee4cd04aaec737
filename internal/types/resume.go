// Package types provides type definitions for structured data used throughout the ResumeForge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ParsedResume represents structured resume data extracted from raw text.
// Every section is optional: extraction returns only what the source text contains.
type ParsedResume struct {
	PersonalDetails *PersonalDetails `json:"personalDetails,omitempty"`
	Experience      []Experience     `json:"experience,omitempty"`
	Education       []Education      `json:"education,omitempty"`
	Skills          *Skills          `json:"skills,omitempty"`
	Projects        []Project        `json:"projects,omitempty"`
}

// PersonalDetails represents contact and identity information from a resume header
type PersonalDetails struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Experience represents a single work history entry
type Experience struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Duration     string   `json:"duration,omitempty"` // e.g., "Jan 2020 - Present"
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Skills represents categorized skill lists
type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// Project represents a personal or professional project entry
type Project struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// HasName reports whether the resume carries a non-blank candidate name
func (r *ParsedResume) HasName() bool {
	return r != nil && r.PersonalDetails != nil && strings.TrimSpace(r.PersonalDetails.Name) != ""
}

// HasEmail reports whether the resume carries a non-blank email address
func (r *ParsedResume) HasEmail() bool {
	return r != nil && r.PersonalDetails != nil && strings.TrimSpace(r.PersonalDetails.Email) != ""
}

// HasPhone reports whether the resume carries a non-blank phone number
func (r *ParsedResume) HasPhone() bool {
	return r != nil && r.PersonalDetails != nil && strings.TrimSpace(r.PersonalDetails.Phone) != ""
}

// TechnicalSkills returns the technical skill list, or nil when the section is absent
func (r *ParsedResume) TechnicalSkills() []string {
	if r == nil || r.Skills == nil {
		return nil
	}
	return r.Skills.Technical
}
