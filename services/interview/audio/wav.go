package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

const (
	formatPCM   = 1
	formatFloat = 3
	formatExt   = 0xFFFE

	maxFmtChunk = 64
)

var ErrUnsupportedWAV = errors.New("unsupported wav file")

// WAV is a decoded recording mixed down to mono with samples in [-1, 1].
type WAV struct {
	SampleRate int
	Channels   int
	Samples    []float64
}

func (w *WAV) Duration() float64 {
	if w.SampleRate == 0 {
		return 0
	}
	return float64(len(w.Samples)) / float64(w.SampleRate)
}

func ReadWAV(path string) (*WAV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wav: %w", err)
	}
	defer f.Close()

	return DecodeWAV(f)
}

// DecodeWAV walks the RIFF chunks, reads fmt and data and skips the rest.
func DecodeWAV(r io.Reader) (*WAV, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: short header", ErrUnsupportedWAV)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE file", ErrUnsupportedWAV)
	}

	var (
		format, channels, bits uint16
		rate                   uint32
		haveFmt                bool
	)
	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			return nil, fmt.Errorf("%w: missing data chunk", ErrUnsupportedWAV)
		}
		id := string(chunk[0:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])
		// Chunks are word aligned; padded is int64 so 0xFFFFFFFF does not wrap.
		padded := int64(size) + int64(size%2)

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: fmt chunk too small", ErrUnsupportedWAV)
			}
			if size > maxFmtChunk {
				return nil, fmt.Errorf("%w: fmt chunk of %d bytes", ErrUnsupportedWAV, size)
			}
			buf := make([]byte, padded)
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, fmt.Errorf("%w: truncated fmt chunk", ErrUnsupportedWAV)
			}
			format = binary.LittleEndian.Uint16(buf[0:2])
			channels = binary.LittleEndian.Uint16(buf[2:4])
			rate = binary.LittleEndian.Uint32(buf[4:8])
			bits = binary.LittleEndian.Uint16(buf[14:16])
			if format == formatExt && size >= 26 {
				format = binary.LittleEndian.Uint16(buf[24:26])
			}
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, fmt.Errorf("%w: data before fmt", ErrUnsupportedWAV)
			}
			data, err := io.ReadAll(io.LimitReader(r, int64(size)))
			if err != nil {
				return nil, fmt.Errorf("failed to read wav data: %w", err)
			}
			samples, err := decodeSamples(data, format, bits, int(channels))
			if err != nil {
				return nil, err
			}
			return &WAV{SampleRate: int(rate), Channels: int(channels), Samples: samples}, nil

		default:
			if _, err := io.CopyN(io.Discard, r, padded); err != nil {
				return nil, fmt.Errorf("%w: truncated %q chunk", ErrUnsupportedWAV, id)
			}
		}
	}
}

func decodeSamples(data []byte, format, bits uint16, channels int) ([]float64, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedWAV, channels)
	}

	width := int(bits) / 8
	var sample func(b []byte) float64
	switch {
	case format == formatPCM && bits == 16:
		sample = func(b []byte) float64 { return float64(int16(binary.LittleEndian.Uint16(b))) / 32768 }
	case format == formatPCM && bits == 8:
		sample = func(b []byte) float64 { return (float64(b[0]) - 128) / 128 }
	case format == formatPCM && bits == 32:
		sample = func(b []byte) float64 { return float64(int32(binary.LittleEndian.Uint32(b))) / 2147483648 }
	case format == formatFloat && bits == 32:
		sample = func(b []byte) float64 { return float64(math.Float32frombits(binary.LittleEndian.Uint32(b))) }
	default:
		return nil, fmt.Errorf("%w: format %d with %d bits", ErrUnsupportedWAV, format, bits)
	}

	frame := width * channels
	n := len(data) / frame
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			off := i*frame + ch*width
			sum += sample(data[off : off+width])
		}
		out[i] = sum / float64(channels)
	}
	return out, nil
}
