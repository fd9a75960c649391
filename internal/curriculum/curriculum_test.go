package curriculum

import "testing"

func TestSubjectsForClass(t *testing.T) {
	for class := MinClass; class <= MaxClass; class++ {
		if len(SubjectsForClass(class)) == 0 {
			t.Errorf("class %d has no subjects", class)
		}
	}
	if SubjectsForClass(0) != nil {
		t.Error("class 0 should have no subjects")
	}
	if SubjectsForClass(13) != nil {
		t.Error("class 13 should have no subjects")
	}
}

func TestValidateSubjects(t *testing.T) {
	if err := ValidateSubjects(7, []string{"Mathematics", "Science"}); err != nil {
		t.Errorf("valid selection rejected: %v", err)
	}
	if err := ValidateSubjects(7, []string{"Physics"}); err == nil {
		t.Error("Physics accepted for class 7")
	}
	if err := ValidateSubjects(7, nil); err == nil {
		t.Error("empty subject list accepted")
	}
	if err := ValidateSubjects(0, []string{"Mathematics"}); err == nil {
		t.Error("out-of-range class accepted")
	}
}

func TestLanguageCode(t *testing.T) {
	if got := LanguageCode("Kannada"); got != "kn" {
		t.Errorf("LanguageCode(Kannada) = %q, want kn", got)
	}
	if got := LanguageCode("Klingon"); got != "en" {
		t.Errorf("LanguageCode(Klingon) = %q, want en fallback", got)
	}
}
