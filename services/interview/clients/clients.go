// Package clients declares the narrow capabilities the interview service
// needs from generative and speech-to-text providers.
package clients

import "context"

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Transcriber interface {
	// Transcribe returns the spoken text of a 16 kHz mono WAV file.
	Transcribe(ctx context.Context, wavPath string) (string, error)
}

type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

type TranscriberFunc func(ctx context.Context, wavPath string) (string, error)

func (f TranscriberFunc) Transcribe(ctx context.Context, wavPath string) (string, error) {
	return f(ctx, wavPath)
}
