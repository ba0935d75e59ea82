package tts

import "context"

// Voice selects the synthesis voice for devotion audio
type Voice struct {
	Engine string `json:"engine"`
	Model  string `json:"model"`
}

type Tts interface {
	Speak(ctx context.Context, text, mood string, voice Voice) error
	Name() string
}

// WebTTS interface for generating audio data instead of playing
type WebTTS interface {
	Tts
	GenerateAudio(ctx context.Context, text, mood string, voice Voice) ([]byte, error)
}

// Factory function for creating TTS clients
func NewWebGoogleTTS() (Tts, error) {
	return NewWebGoogleTTSClient()
}
