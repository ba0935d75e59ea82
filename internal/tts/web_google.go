package tts

import (
	"context"
	"fmt"
	"os"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	ttspb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"github.com/gabelabs/gabe-web/internal/logger"
)

type WebGoogleTTS struct {
	client *texttospeech.Client
	logger *logger.Log
}

func NewWebGoogleTTSClient() (*WebGoogleTTS, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if creds := os.Getenv("GABE_TTS_CREDENTIALS"); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google TTS client: %w", err)
	}

	return &WebGoogleTTS{
		client: client,
		logger: logger.New(),
	}, nil
}

// Extract language code from model name (e.g., "en-US-Chirp-HD-F" -> "en-US")
func (g *WebGoogleTTS) extractLanguageCode(modelName string) string {
	parts := strings.Split(modelName, "-")
	if len(parts) >= 2 {
		return fmt.Sprintf("%s-%s", parts[0], parts[1])
	}
	return "en-US"
}

// GenerateAudio synthesizes devotion or prayer text without playing it
func (g *WebGoogleTTS) GenerateAudio(ctx context.Context, text, mood string, voice Voice) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	// Strip markdown emphasis so it isn't read aloud
	cleanText := strings.NewReplacer("*", "", "[", "", "]", "").Replace(text)

	languageCode := g.extractLanguageCode(voice.Model)

	req := &ttspb.SynthesizeSpeechRequest{
		Input: &ttspb.SynthesisInput{
			InputSource: &ttspb.SynthesisInput_Text{Text: cleanText},
		},
		Voice: &ttspb.VoiceSelectionParams{
			LanguageCode: languageCode,
			Name:         voice.Model,
		},
		AudioConfig: &ttspb.AudioConfig{
			AudioEncoding:   ttspb.AudioEncoding_MP3,
			SpeakingRate:    g.getSpeakingRateForMood(mood),
			Pitch:           g.getPitchForMood(mood),
			VolumeGainDb:    0.0,
			SampleRateHertz: 22050,
		},
	}

	g.logger.Debug(fmt.Sprintf("Generating Google TTS audio with voice: %s, language: %s, mood: %s",
		voice.Model, languageCode, mood))

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize speech: %w", err)
	}

	if len(resp.AudioContent) == 0 {
		return nil, fmt.Errorf("empty audio content received from Google TTS")
	}

	g.logger.Debug(fmt.Sprintf("Generated %d bytes of MP3 audio", len(resp.AudioContent)))
	return resp.AudioContent, nil
}

// Speak implementation for compatibility
func (g *WebGoogleTTS) Speak(ctx context.Context, text, mood string, voice Voice) error {
	_, err := g.GenerateAudio(ctx, text, mood, voice)
	return err
}

func (g *WebGoogleTTS) Name() string {
	return "Google Cloud Text-to-Speech (Web)"
}

func (g *WebGoogleTTS) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// Devotions read slower and warmer than plain narration
func (g *WebGoogleTTS) getSpeakingRateForMood(mood string) float64 {
	switch strings.ToLower(mood) {
	case "grateful", "hopeful", "joyful":
		return 1.05
	case "anxious", "worried":
		return 0.95
	case "sad", "tired":
		return 0.85
	case "peaceful", "calm", "devotion":
		return 0.90
	default:
		return 1.0
	}
}

func (g *WebGoogleTTS) getPitchForMood(mood string) float64 {
	switch strings.ToLower(mood) {
	case "grateful", "hopeful", "joyful":
		return 1.5
	case "sad", "tired":
		return -2.0
	case "anxious", "worried":
		return -0.5
	case "peaceful", "calm", "devotion":
		return -1.0
	default:
		return 0.0
	}
}
