package tts

import (
	"context"
	"github.com/gabelabs/gabe-web/internal/logger"
)

type DummyTts struct {
}

func NewDummyTts() *DummyTts {
	return &DummyTts{}
}

func (d *DummyTts) Speak(_ context.Context, text, mood string, voice Voice) error {
	logger.New().Debug("no tts configured. ignoring TTS request")
	return nil
}

func (d *DummyTts) Name() string {
	return "dummy"
}
