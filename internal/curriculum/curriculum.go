// Package curriculum carries the static class, subject, and language tables
// used for onboarding and profile validation.
package curriculum

import "fmt"

// Class number bounds.
const (
	MinClass = 1
	MaxClass = 12
)

// Language pairs a display name with its ISO 639-1 code.
type Language struct {
	Name string
	Code string
}

// Languages lists the supported languages in display order. English first;
// it is the fallback for every localized surface.
var Languages = []Language{
	{Name: "English", Code: "en"},
	{Name: "Hindi", Code: "hi"},
	{Name: "Kannada", Code: "kn"},
	{Name: "Telugu", Code: "te"},
	{Name: "Tamil", Code: "ta"},
	{Name: "Marathi", Code: "mr"},
	{Name: "Bengali", Code: "bn"},
	{Name: "Gujarati", Code: "gu"},
}

// LanguageCode maps a language display name to its code, defaulting to
// English for unknown names.
func LanguageCode(name string) string {
	for _, l := range Languages {
		if l.Name == name {
			return l.Code
		}
	}
	return "en"
}

// subjectsByClass maps a class number to its subject list.
var subjectsByClass = map[int][]string{
	1:  {"Mathematics", "English", "Hindi", "Environmental Studies"},
	2:  {"Mathematics", "English", "Hindi", "Environmental Studies"},
	3:  {"Mathematics", "English", "Hindi", "Environmental Studies"},
	4:  {"Mathematics", "English", "Hindi", "Environmental Studies"},
	5:  {"Mathematics", "English", "Hindi", "Environmental Studies"},
	6:  {"Mathematics", "Science", "Social Science", "English", "Hindi", "Sanskrit"},
	7:  {"Mathematics", "Science", "Social Science", "English", "Hindi", "Sanskrit"},
	8:  {"Mathematics", "Science", "Social Science", "English", "Hindi", "Sanskrit"},
	9:  {"Mathematics", "Science", "Social Science", "English", "Hindi", "Information Technology"},
	10: {"Mathematics", "Science", "Social Science", "English", "Hindi", "Information Technology"},
	11: {"Physics", "Chemistry", "Mathematics", "Biology", "English", "Computer Science", "Accountancy", "Business Studies", "Economics"},
	12: {"Physics", "Chemistry", "Mathematics", "Biology", "English", "Computer Science", "Accountancy", "Business Studies", "Economics"},
}

// SubjectsForClass returns the subject list for a class number, or nil when
// the class is out of range.
func SubjectsForClass(class int) []string {
	subjects, ok := subjectsByClass[class]
	if !ok {
		return nil
	}
	out := make([]string, len(subjects))
	copy(out, subjects)
	return out
}

// ValidateClass checks that class is within the supported range.
func ValidateClass(class int) error {
	if class < MinClass || class > MaxClass {
		return fmt.Errorf("class %d out of range [%d, %d]", class, MinClass, MaxClass)
	}
	return nil
}

// ValidateSubjects checks that every subject is offered for the class.
func ValidateSubjects(class int, subjects []string) error {
	if err := ValidateClass(class); err != nil {
		return err
	}
	if len(subjects) == 0 {
		return fmt.Errorf("at least one subject is required")
	}
	offered := make(map[string]bool)
	for _, s := range subjectsByClass[class] {
		offered[s] = true
	}
	for _, s := range subjects {
		if !offered[s] {
			return fmt.Errorf("subject %q is not offered for class %d", s, class)
		}
	}
	return nil
}
