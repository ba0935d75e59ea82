// internal/chat/crisis.go
package chat

import "strings"

// crisisKeywords are phrases that indicate someone may be in danger.
// Matching is substring-based against the lowercased message.
var crisisKeywords = []string{
	"kill myself",
	"want to die",
	"end my life",
	"suicide",
	"suicidal",
	"hurt myself",
	"harm myself",
	"self harm",
	"self-harm",
	"no reason to live",
	"better off dead",
	"don't want to be here anymore",
	"end it all",
}

const crisisResponse = "I'm really glad you told me this, and I want you to know your life matters deeply. " +
	"You don't have to carry this alone.\n\n" +
	"Please reach out right now to someone who can help:\n" +
	"- Call or text 988 (Suicide & Crisis Lifeline, available 24/7)\n" +
	"- Text HOME to 741741 (Crisis Text Line)\n" +
	"- If you're in immediate danger, call 911\n\n" +
	"God sees you, and so do I. You are loved more than you know. " +
	"Please talk to someone right away - I'll be here when you come back."

// CheckCrisis returns a supportive response with crisis resources if the
// message contains any crisis indicator, or the empty string otherwise.
func CheckCrisis(message string) string {
	lower := strings.ToLower(message)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return crisisResponse
		}
	}
	return ""
}
