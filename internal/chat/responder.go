// internal/chat/responder.go
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabelabs/gabe-web/internal/llm"
	"github.com/gabelabs/gabe-web/internal/logger"
	"github.com/gabelabs/gabe-web/internal/models"
)

// prayerKeywords trigger the prayer interceptor before anything else.
var prayerKeywords = []string{
	"pray", "prayer", "jesus", "father", "heavenly", "god help", "bless me",
	"amen", "lord", "can you pray", "please pray", "talk to god", "i need prayer",
}

// reservedNames are words that should never be used as a personal name
// in a prayer.
var reservedNames = map[string]bool{
	"":       true,
	"prayer": true,
	"pray":   true,
	"god":    true,
	"help":   true,
	"jesus":  true,
	"lord":   true,
	"father": true,
}

const fallbackResponse = "I'm having a little trouble finding my words right now, but I'm still here with you. " +
	"Would you try saying that again in a moment?"

// Reply is the outcome of a single chat exchange
type Reply struct {
	Response string
	Mood     string
	IsCrisis bool
	IsPrayer bool
}

// Responder produces GABE's replies. Prayer requests and crisis
// messages are answered locally; everything else goes to the LLM.
type Responder struct {
	llm llm.LLM
	log *logger.Log
}

func NewResponder(client llm.LLM) *Responder {
	return &Responder{
		llm: client,
		log: logger.New(),
	}
}

// Respond answers a user message. Ordering matters: the prayer
// interceptor runs before crisis detection, matching how a pastor
// would answer a plea for prayer rather than routing it elsewhere.
func (r *Responder) Respond(ctx context.Context, user *models.User, history []models.Conversation, message string) Reply {
	lower := strings.ToLower(strings.TrimSpace(message))

	for _, kw := range prayerKeywords {
		if strings.Contains(lower, kw) {
			return Reply{
				Response: hopefulPrayer(user.Name),
				Mood:     "hopeful",
				IsPrayer: true,
			}
		}
	}

	if crisis := CheckCrisis(message); crisis != "" {
		return Reply{
			Response: crisis,
			Mood:     "concerned",
			IsCrisis: true,
		}
	}

	mood := DetectMood(message)

	response, err := r.llm.GenerateResponse(ctx, r.buildPrompt(user, history, message))
	if err != nil {
		r.log.WithError(err).Error("Chat generation failed, using fallback")
		response = fallbackResponse
	}

	return Reply{
		Response: strings.TrimSpace(response),
		Mood:     mood,
	}
}

func hopefulPrayer(name string) string {
	if reservedNames[strings.ToLower(name)] {
		name = "friend"
	}

	return fmt.Sprintf("Dear %s, here's a prayer just for you:\n\n"+
		"*Father God, I lift up %s to You right now.\n"+
		"Fill their heart with peace that quiets the noise,\n"+
		"courage that stands strong, and hope that never fades.\n"+
		"You are right there, holding them steady.\n"+
		"Surround them with Your love today. Amen.*\n\n"+
		"Hey, I want you to know something, %s - you've got a friend now.\n"+
		"I'm GABE, and I'm not going anywhere.\n"+
		"Let's walk this journey together.\n\n"+
		"*Always beside you - GABE*", name, name, name)
}

func (r *Responder) buildPrompt(user *models.User, history []models.Conversation, message string) string {
	var b strings.Builder

	b.WriteString("You are GABE, a warm and encouraging faith-based companion. ")
	b.WriteString("You speak like a caring friend, weave in scripture gently when it fits, ")
	b.WriteString("and never lecture. Keep replies short and personal.\n\n")

	if user.Name != "" {
		fmt.Fprintf(&b, "You are talking with %s", user.Name)
		if user.AgeRange != "" {
			fmt.Fprintf(&b, " (age range %s)", user.AgeRange)
		}
		b.WriteString(".\n\n")
	}

	if len(history) > 0 {
		b.WriteString("Recent conversation:\n")
		for _, conv := range history {
			fmt.Fprintf(&b, "Them: %s\nYou: %s\n", conv.UserMessage, conv.GabeResponse)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "They just said: %s\n\nYour reply:", message)
	return b.String()
}
