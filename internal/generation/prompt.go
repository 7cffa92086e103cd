package generation

import (
	"fmt"
	"strings"
)

const (
	promptPreamble = "You are a professional email writer. " +
		"Write a complete, well-structured email based on the following requirements. " +
		"Do not ask any questions or request clarification. Write the email directly.\n\n"

	promptInstructions = "\nWrite a complete professional email including:\n" +
		"- Subject line (start with 'Subject: ')\n" +
		"- Appropriate greeting\n" +
		"- Clear and concise main content\n" +
		"- Professional closing\n" +
		"- Signature placeholder [Your Name]\n\n"

	// FinalInstruction is always the last line of a prompt.
	FinalInstruction = "Write the email now:"
)

// BuildPrompt assembles the instruction text sent upstream for req.
// The tone line is included only when req.Tone is non-empty.
func BuildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString(promptPreamble)
	b.WriteString("Email Requirements: ")
	b.WriteString(req.Content)
	b.WriteString("\n")

	if req.Tone != "" {
		b.WriteString("Tone: ")
		b.WriteString(req.Tone)
		b.WriteString("\n")
	}

	b.WriteString(promptInstructions)
	b.WriteString(FinalInstruction)

	return b.String()
}

// EscapeJSONString escapes s for embedding between the quotes of a JSON
// string literal. Backslash is replaced first so later substitutions are not
// escaped twice.
func EscapeJSONString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	s = strings.ReplaceAll(s, "\t", `\t`)

	// Other control characters are not legal inside a JSON string.
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for _, r := range s {
		if isControl(r) {
			fmt.Fprintf(&b, `\u%04x`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControl(r rune) bool {
	return r < 0x20
}
