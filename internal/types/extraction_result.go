// Package types provides type definitions for structured data used throughout the resume-extractor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ExtractionResult is the partial record produced for one résumé.
// A missing field means "not found", never an error.
type ExtractionResult struct {
	Name            string   `json:"name,omitempty"`
	ContactNumber   string   `json:"contact_number,omitempty"`
	Email           string   `json:"email,omitempty"`
	ExtractedSkills []string `json:"extracted_skills,omitempty"`
	Education       []string `json:"education,omitempty"`
	// YrsExp is nil only when the experience calculator did not run.
	YrsExp   *float64 `json:"yrs_exp,omitempty"`
	LinkedIn []string `json:"linkedin,omitempty"`
}

// HasYearsOfExperience reports whether the experience calculator produced a value
func (r *ExtractionResult) HasYearsOfExperience() bool {
	return r != nil && r.YrsExp != nil
}

// YearsOfExperience returns the computed years, or zero when absent
func (r *ExtractionResult) YearsOfExperience() float64 {
	if !r.HasYearsOfExperience() {
		return 0
	}
	return *r.YrsExp
}

// FoundFields returns the JSON names of the fields present in the result, in record order
func (r *ExtractionResult) FoundFields() []string {
	if r == nil {
		return nil
	}
	fields := make([]string, 0, 7)
	if r.Name != "" {
		fields = append(fields, "name")
	}
	if r.ContactNumber != "" {
		fields = append(fields, "contact_number")
	}
	if r.Email != "" {
		fields = append(fields, "email")
	}
	if len(r.ExtractedSkills) > 0 {
		fields = append(fields, "extracted_skills")
	}
	if len(r.Education) > 0 {
		fields = append(fields, "education")
	}
	if r.YrsExp != nil {
		fields = append(fields, "yrs_exp")
	}
	if len(r.LinkedIn) > 0 {
		fields = append(fields, "linkedin")
	}
	return fields
}
