package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func sine(freq float64, seconds float64, amp float64) []float64 {
	n := int(seconds * SampleRate)
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/SampleRate)
	}
	return out
}

// encodeWAV writes 16-bit PCM with an extra LIST chunk before data.
func encodeWAV(samples []float64, rate, channels int) []byte {
	var data bytes.Buffer
	for _, s := range samples {
		for ch := 0; ch < channels; ch++ {
			binary.Write(&data, binary.LittleEndian, int16(s*32767))
		}
	}

	var b bytes.Buffer
	b.WriteString("RIFF")
	binary.Write(&b, binary.LittleEndian, uint32(4+8+16+8+4+8+data.Len()))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	binary.Write(&b, binary.LittleEndian, uint32(16))
	binary.Write(&b, binary.LittleEndian, uint16(formatPCM))
	binary.Write(&b, binary.LittleEndian, uint16(channels))
	binary.Write(&b, binary.LittleEndian, uint32(rate))
	binary.Write(&b, binary.LittleEndian, uint32(rate*channels*2))
	binary.Write(&b, binary.LittleEndian, uint16(channels*2))
	binary.Write(&b, binary.LittleEndian, uint16(16))
	b.WriteString("LIST")
	binary.Write(&b, binary.LittleEndian, uint32(4))
	b.WriteString("INFO")
	b.WriteString("data")
	binary.Write(&b, binary.LittleEndian, uint32(data.Len()))
	b.Write(data.Bytes())
	return b.Bytes()
}

func TestDecodeWAV(t *testing.T) {
	in := sine(440, 0.5, 0.5)
	w, err := DecodeWAV(bytes.NewReader(encodeWAV(in, SampleRate, 2)))
	if err != nil {
		t.Fatalf("DecodeWAV() error = %v", err)
	}
	if w.SampleRate != SampleRate || w.Channels != 2 || len(w.Samples) != len(in) {
		t.Fatalf("got rate %d channels %d samples %d", w.SampleRate, w.Channels, len(w.Samples))
	}
	if math.Abs(w.Duration()-0.5) > 1e-9 {
		t.Errorf("Duration() = %v", w.Duration())
	}
	for i := 0; i < len(in); i += 997 {
		if math.Abs(w.Samples[i]-in[i]) > 1e-3 {
			t.Fatalf("sample %d = %v, want %v", i, w.Samples[i], in[i])
		}
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	for _, in := range [][]byte{nil, []byte("RIFF0000WAVX"), []byte("RIFF\x00\x00\x00\x00WAVE")} {
		if _, err := DecodeWAV(bytes.NewReader(in)); !errors.Is(err, ErrUnsupportedWAV) {
			t.Errorf("DecodeWAV(%q) err = %v", in, err)
		}
	}
}

func TestDecodeWAVOversizedChunks(t *testing.T) {
	chunk := func(id string, size uint32) []byte {
		b := []byte("RIFF\x00\x00\x00\x00WAVE" + id)
		return binary.LittleEndian.AppendUint32(b, size)
	}
	tests := []struct {
		name string
		in   []byte
	}{
		{"fmt size wraps when padded", chunk("fmt ", 0xFFFFFFFF)},
		{"fmt larger than any format", append(chunk("fmt ", 1<<20), make([]byte, 32)...)},
		{"unknown chunk past end", append(chunk("LIST", 0xFFFFFFFF), "INFO"...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeWAV(bytes.NewReader(tt.in)); !errors.Is(err, ErrUnsupportedWAV) {
				t.Errorf("DecodeWAV() err = %v, want ErrUnsupportedWAV", err)
			}
		})
	}
}

func TestAnalyzeTone(t *testing.T) {
	f := Analyze(sine(200, 1, 0.5), SampleRate)

	if math.Abs(f.PitchMean-200) > 5 {
		t.Errorf("PitchMean = %v, want ~200", f.PitchMean)
	}
	if f.PitchVariation > 5 {
		t.Errorf("PitchVariation = %v", f.PitchVariation)
	}
	// RMS of a sine is amp/sqrt(2).
	if math.Abs(f.MeanVolume-0.5/math.Sqrt2) > 0.01 {
		t.Errorf("MeanVolume = %v", f.MeanVolume)
	}
	if f.SilenceRatio != 0 {
		t.Errorf("SilenceRatio = %v", f.SilenceRatio)
	}
	// 200 Hz crosses zero 400 times per second.
	if want := 400.0 / SampleRate; math.Abs(f.SpeechRate-want) > 0.002 {
		t.Errorf("SpeechRate = %v, want ~%v", f.SpeechRate, want)
	}
}

func TestAnalyzeSilenceAndEmpty(t *testing.T) {
	f := Analyze(make([]float64, SampleRate), SampleRate)
	if f.SilenceRatio != 1 || f.PitchMean != 0 || f.MeanVolume != 0 {
		t.Errorf("silence features = %+v", f)
	}

	if got := Analyze(nil, SampleRate); got != (Features{}) {
		t.Errorf("empty features = %+v", got)
	}

	mixed := append(sine(150, 0.5, 0.4), make([]float64, SampleRate/2)...)
	f = Analyze(mixed, SampleRate)
	if f.SilenceRatio < 0.3 || f.SilenceRatio > 0.7 {
		t.Errorf("SilenceRatio = %v, want about half", f.SilenceRatio)
	}
	for _, v := range []float64{f.MeanVolume, f.VolumeVariation, f.SpeechRate, f.PitchMean, f.PitchVariation} {
		if math.IsNaN(v) {
			t.Fatalf("NaN in %+v", f)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"/rec/interview.WAV": ".wav",
		"/rec/interview.m4a": ".m4a",
		"/rec/interview":     ".mp3",
		"/rec/x.verylongext": ".mp3",
		"":                   ".mp3",
	}
	for in, want := range tests {
		if got := extension(in); got != want {
			t.Errorf("extension(%q) = %q, want %q", in, got, want)
		}
	}
}

func newTestDownloader(t *testing.T, maxBytes int64) *Downloader {
	return NewDownloader(DownloaderConfig{
		MaxBytes:   maxBytes,
		TempDir:    t.TempDir(),
		Attempts:   3,
		RetryDelay: time.Millisecond,
	})
}

func TestDownload(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("audio-bytes"))
	}))
	defer srv.Close()

	path, err := newTestDownloader(t, 1024).Download(context.Background(), srv.URL+"/files/talk.ogg?sig=abc")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if filepath.Ext(path) != ".ogg" {
		t.Errorf("path = %q, want .ogg extension", path)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "audio-bytes" {
		t.Errorf("content = %q", data)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}

	Cleanup(context.Background(), path, "", path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after Cleanup")
	}
}

func TestDownloadFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if strings.HasSuffix(r.URL.Path, "missing.mp3") {
			http.NotFound(w, r)
			return
		}
		w.Write(bytes.Repeat([]byte("x"), 64))
	}))
	defer srv.Close()

	d := newTestDownloader(t, 16)
	ctx := context.Background()

	if _, err := d.Download(ctx, srv.URL+"/missing.mp3"); err == nil {
		t.Error("expected 404 error")
	}
	if calls.Load() != 1 {
		t.Errorf("404 was retried: %d calls", calls.Load())
	}

	if _, err := d.Download(ctx, srv.URL+"/big.mp3"); !errors.Is(err, ErrTooLarge) {
		t.Errorf("err = %v, want ErrTooLarge", err)
	}

	for _, bad := range []string{"", "ftp://host/a.mp3", "not a url"} {
		if _, err := d.Download(ctx, bad); !errors.Is(err, ErrInvalidURL) {
			t.Errorf("Download(%q) err = %v, want ErrInvalidURL", bad, err)
		}
	}
}

func TestConverter(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	if err := os.WriteFile(in, encodeWAV(sine(220, 0.5, 0.3), 44100, 2), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := NewConverter("", dir).ToWAV(context.Background(), in)
	if err != nil {
		t.Fatalf("ToWAV() error = %v", err)
	}
	w, err := ReadWAV(out)
	if err != nil {
		t.Fatalf("ReadWAV() error = %v", err)
	}
	if w.SampleRate != SampleRate || w.Channels != 1 {
		t.Errorf("rate %d channels %d", w.SampleRate, w.Channels)
	}
}

func TestConverterMissingBinary(t *testing.T) {
	c := NewConverter(filepath.Join(t.TempDir(), "no-ffmpeg"), t.TempDir())
	if _, err := c.ToWAV(context.Background(), "in.mp3"); err == nil {
		t.Error("expected error for missing ffmpeg")
	}
}
