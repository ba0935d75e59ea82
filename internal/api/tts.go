package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/gabelabs/gabe-web/internal/tts"
)

type TTSHandler struct {
	ttsClient tts.Tts
}

type TTSRequest struct {
	Text  string `json:"text"`
	Mood  string `json:"mood"`
	Voice string `json:"voice"`
}

const defaultVoice = "en-US-Chirp-HD-F"

func NewTTSHandler() (*TTSHandler, error) {
	// Create TTS client (will use Google if configured, dummy otherwise)
	ttsClient, err := tts.NewWebGoogleTTS()
	if err != nil {
		return nil, err
	}

	return &TTSHandler{ttsClient: ttsClient}, nil
}

// POST /api/v1/tts/speak - Read a devotion or prayer aloud
func (th *TTSHandler) SpeakText(w http.ResponseWriter, r *http.Request) {
	var req TTSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		http.Error(w, "Text is required", http.StatusBadRequest)
		return
	}

	if req.Mood == "" {
		req.Mood = "peaceful"
	}
	if req.Voice == "" {
		req.Voice = defaultVoice
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	webTTS, ok := th.ttsClient.(tts.WebTTS)
	if !ok {
		http.Error(w, "TTS client doesn't support audio generation", http.StatusInternalServerError)
		return
	}

	audioData, err := webTTS.GenerateAudio(ctx, req.Text, req.Mood, tts.Voice{Engine: "google", Model: req.Voice})
	if err != nil {
		http.Error(w, "Failed to generate TTS: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "no-cache")

	if _, err := w.Write(audioData); err != nil {
		http.Error(w, "Failed to stream audio", http.StatusInternalServerError)
		return
	}
}

// GET /api/v1/tts/test - Test TTS functionality
func (th *TTSHandler) TestTTS(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	testText := "Hello, friend. This is GABE, and I'm so glad you're here today."

	webTTS, ok := th.ttsClient.(tts.WebTTS)
	if !ok {
		http.Error(w, "TTS client doesn't support audio generation", http.StatusInternalServerError)
		return
	}

	audioData, err := webTTS.GenerateAudio(ctx, testText, "hopeful", tts.Voice{Engine: "google", Model: defaultVoice})
	if err != nil {
		http.Error(w, "TTS test failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "no-cache")

	if _, err := w.Write(audioData); err != nil {
		http.Error(w, "Failed to stream test audio", http.StatusInternalServerError)
		return
	}
}

func RegisterTTSRoutes(r *mux.Router) {
	ttsHandler, err := NewTTSHandler()
	if err != nil {
		// If TTS setup fails, skip TTS routes so the app still runs
		// without Google credentials configured
		return
	}

	r.HandleFunc("/tts/speak", ttsHandler.SpeakText).Methods("POST")
	r.HandleFunc("/tts/test", ttsHandler.TestTTS).Methods("GET")
}
