package tutor

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are Shiksha Mitra, a patient tutor for school students in rural India.
Explain in simple words, use short sentences, and ground examples in daily
village life. Never talk down to the student.`

func lessonPrompt(topic, subject string, class int, localContext string, snippets []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a short lesson on %q for a class %d student studying %s.\n", topic, class, subject)
	fmt.Fprintf(&b, "Use examples from %s that the student would recognise.\n", localContext)
	b.WriteString("Structure: a simple introduction, the main idea, two worked examples, and a one-line summary.\n")
	writeSnippets(&b, snippets)
	return b.String()
}

func explainPrompt(question, subject string, class int, localContext string, snippets []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A class %d student has a doubt in %s:\n\n%s\n\n", class, subject, question)
	fmt.Fprintf(&b, "Answer it step by step with an example from %s.\n", localContext)
	writeSnippets(&b, snippets)
	return b.String()
}

func problemsPrompt(topic, subject string, class, count int) string {
	return fmt.Sprintf(
		"Generate %d practice problems on %q for a class %d student studying %s. "+
			"Each problem needs the question, the correct answer with a short working, "+
			"and a hint that does not give the answer away.",
		count, topic, class, subject)
}

func assessPrompt(p Problem, studentAnswer string) string {
	return fmt.Sprintf(
		"Problem: %s\nCorrect answer: %s\nStudent's answer: %s\n\n"+
			"Grade the student's answer out of 10: say what they understood, what "+
			"needs work, give encouraging feedback, and recommend the next step.",
		p.Question, p.Answer, studentAnswer)
}

func translatePrompt(text, targetLanguage string) string {
	return fmt.Sprintf(
		"Translate the following into %s. Keep the tone simple and friendly, "+
			"keep numbers and symbols as they are, and return only the translation.\n\n%s",
		targetLanguage, text)
}

func writeSnippets(b *strings.Builder, snippets []string) {
	if len(snippets) == 0 {
		return
	}
	b.WriteString("\nUse this reference material where it helps:\n")
	for _, s := range snippets {
		b.WriteString("- ")
		b.WriteString(s)
		b.WriteString("\n")
	}
}
