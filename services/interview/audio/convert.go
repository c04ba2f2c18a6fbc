package audio

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/xilidan/interview/pkg/gen"
)

// SampleRate is the rate every recording is resampled to before analysis.
const SampleRate = 16000

type Converter struct {
	ffmpeg  string
	tempDir string
	ids     gen.UUIDGenerator
}

func NewConverter(ffmpeg, tempDir string) *Converter {
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	return &Converter{ffmpeg: ffmpeg, tempDir: tempDir, ids: gen.UUID()}
}

// ToWAV converts input to 16 kHz mono 16-bit PCM WAV. WAV inputs are
// converted too so that analysis always sees the same layout.
func (c *Converter) ToWAV(ctx context.Context, input string) (string, error) {
	out := filepath.Join(tempDir(c.tempDir), "interview-"+c.ids.NextString()+".wav")

	cmd := exec.CommandContext(ctx, c.ffmpeg,
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", input,
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(SampleRate),
		"-acodec", "pcm_s16le",
		"-f", "wav",
		out,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		Cleanup(ctx, out)
		return "", fmt.Errorf("ffmpeg failed: %w\nOutput: %s", err, string(output))
	}
	return out, nil
}
