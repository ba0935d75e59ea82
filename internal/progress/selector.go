package progress

import (
	"hash/fnv"
	"math/rand"
	"strings"

	"github.com/gabelabs/gabe-web/internal/content"
)

// DevotionVariantForHour maps an hour of day to the devotion served then.
// The window is half-open: hours [5,14) are morning, everything else is
// evening, so 5:00 belongs to morning and 14:00 to evening.
func DevotionVariantForHour(hour int) string {
	if hour >= 5 && hour < 14 {
		return StreakMorning
	}
	return StreakEvening
}

// ChallengeForDate maps a calendar date to one entry in the prayer challenge
// bank. The mapping only needs to be stable: same date, same challenge, for
// every session and every process. FNV-1a over the ISO date string gives
// that without depending on any runtime's hash seeding.
func ChallengeForDate(date string) string {
	h := fnv.New32a()
	h.Write([]byte(date))
	idx := int(h.Sum32()) % len(content.PrayerChallenges)
	if idx < 0 {
		idx += len(content.PrayerChallenges)
	}
	return content.PrayerChallenges[idx]
}

// Quiz question types.
const (
	QuizFillBlank      = "fill_blank"
	QuizMultipleChoice = "multiple_choice"
)

// VerseQuiz is one generated verse mastery question. Fill-blank quizzes
// carry QuizText; multiple-choice quizzes carry Text, Question and Options.
type VerseQuiz struct {
	Type          string   `json:"type"`
	Reference     string   `json:"reference,omitempty"`
	QuizText      string   `json:"quiz_text,omitempty"`
	Text          string   `json:"text,omitempty"`
	Question      string   `json:"question,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Theme         string   `json:"theme"`
}

// GenerateVerseQuiz picks a random verse and builds either a fill-in-the-
// blank or a multiple-choice question for it. Selection is uniform and not
// reproducible across calls.
func GenerateVerseQuiz(rng *rand.Rand) VerseQuiz {
	verse := content.MasteryVerses[rng.Intn(len(content.MasteryVerses))]

	if rng.Intn(2) == 0 {
		words := strings.Fields(verse.Text)
		// Keep the blank away from the first and last words.
		blank := 2 + rng.Intn(len(words)-3)
		answer := strings.Trim(strings.ToLower(words[blank]), ".,!?")
		masked := append([]string{}, words[:blank]...)
		masked = append(masked, "_____")
		masked = append(masked, words[blank+1:]...)

		return VerseQuiz{
			Type:          QuizFillBlank,
			Reference:     verse.Reference,
			QuizText:      strings.Join(masked, " "),
			CorrectAnswer: answer,
			Theme:         verse.Theme,
		}
	}

	wrong := make([]string, 0, len(content.MasteryVerses)-1)
	for _, v := range content.MasteryVerses {
		if v.Reference != verse.Reference {
			wrong = append(wrong, v.Reference)
		}
	}
	rng.Shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })

	options := []string{verse.Reference, wrong[0], wrong[1]}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return VerseQuiz{
		Type:          QuizMultipleChoice,
		Text:          verse.Text,
		Question:      "Which verse is this?",
		Options:       options,
		CorrectAnswer: verse.Reference,
		Theme:         verse.Theme,
	}
}

// CheckVerseAnswer decides correctness for a submitted quiz answer.
// Fill-blank answers are compared case-insensitively; multiple-choice
// answers must match the reference exactly.
func CheckVerseAnswer(submitted, expected, quizType string) bool {
	if quizType == QuizFillBlank {
		return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(expected))
	}
	return submitted == expected
}
