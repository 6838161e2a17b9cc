package types

import "github.com/go-playground/validator/v10"

// Lexicon holds the static word lists the field extractors match against.
// Replacing the lists changes what is recognized, not how.
type Lexicon struct {
	Skills              []string `json:"skills" validate:"required,min=1,dive,required"`
	InstitutionKeywords []string `json:"institution_keywords" validate:"required,min=1,dive,required"`
}

// DefaultSkills is the built-in skills lexicon
var DefaultSkills = []string{
	"Python", "Data Analysis", "Machine Learning", "Communication", "Project Management",
	"Deep Learning", "SQL", "Tableau", "LWC", "Keycloak", "Laravel", "HTML", "CSS", "JS",
	"Java", "JavaScript",
}

// DefaultInstitutionKeywords is the built-in education keyword lexicon.
// Order matters: earlier keywords win when two start at the same position.
var DefaultInstitutionKeywords = []string{
	"faculté", "école", "université", "institut", "grande école", "bachelor", "master",
	"doctorat", "ensa", "fst", "ensam", "ehtp", "uir", "internationale", "rabat",
}

// DefaultLexicon returns a copy of the built-in lexicon
func DefaultLexicon() Lexicon {
	return Lexicon{
		Skills:              append([]string(nil), DefaultSkills...),
		InstitutionKeywords: append([]string(nil), DefaultInstitutionKeywords...),
	}
}

// Validate checks that both lists are present and hold no empty entries.
func (l Lexicon) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}
