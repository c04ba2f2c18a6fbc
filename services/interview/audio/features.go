package audio

import "math"

const (
	frameLength = 2048
	hopLength   = 512

	// silenceThreshold is the frame RMS under which a frame counts as silent.
	silenceThreshold = 0.01

	minPitchHz     = 50
	maxPitchHz     = 500
	pitchWindow    = 1024
	voicedMinCorr  = 0.3
	maxPitchFrames = 1500
)

// Features summarizes loudness, rhythm and pitch of a recording.
type Features struct {
	MeanVolume      float64
	VolumeVariation float64
	// SpeechRate is the mean zero-crossing rate, a rough proxy for how fast
	// the speaker talks.
	SpeechRate     float64
	SilenceRatio   float64
	PitchMean      float64
	PitchVariation float64
}

// Analyze never returns NaN; an empty recording yields zero features.
func Analyze(samples []float64, sampleRate int) Features {
	starts := frameStarts(len(samples))
	if len(starts) == 0 || sampleRate <= 0 {
		return Features{}
	}

	rms := make([]float64, len(starts))
	zcr := make([]float64, len(starts))
	silent := 0
	for i, start := range starts {
		frame := window(samples, start, frameLength)
		rms[i] = rootMeanSquare(frame)
		zcr[i] = zeroCrossingRate(frame)
		if rms[i] < silenceThreshold {
			silent++
		}
	}

	var f Features
	f.MeanVolume, f.VolumeVariation = meanStd(rms)
	f.SpeechRate, _ = meanStd(zcr)
	f.SilenceRatio = float64(silent) / float64(len(starts))
	f.PitchMean, f.PitchVariation = meanStd(pitches(samples, sampleRate, starts, rms))
	return f
}

func frameStarts(n int) []int {
	if n == 0 {
		return nil
	}
	if n <= frameLength {
		return []int{0}
	}
	starts := make([]int, 0, (n-frameLength)/hopLength+1)
	for s := 0; s+frameLength <= n; s += hopLength {
		starts = append(starts, s)
	}
	return starts
}

func window(samples []float64, start, length int) []float64 {
	end := start + length
	if end > len(samples) {
		end = len(samples)
	}
	return samples[start:end]
}

// rootMeanSquare divides by the full frame length so a short tail is treated
// as zero padded.
func rootMeanSquare(frame []float64) float64 {
	var sum float64
	for _, s := range frame {
		sum += s * s
	}
	return math.Sqrt(sum / frameLength)
}

func zeroCrossingRate(frame []float64) float64 {
	crossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] >= 0) != (frame[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / frameLength
}

func pitches(samples []float64, sampleRate int, starts []int, rms []float64) []float64 {
	minLag := sampleRate / maxPitchHz
	maxLag := sampleRate / minPitchHz
	maxLag = min(maxLag, pitchWindow-1)
	minLag = max(minLag, 1)

	stride := 1
	if len(starts) > maxPitchFrames {
		stride = (len(starts) + maxPitchFrames - 1) / maxPitchFrames
	}

	var out []float64
	for i := 0; i < len(starts); i += stride {
		if rms[i] < silenceThreshold {
			continue
		}
		frame := window(samples, starts[i], pitchWindow)
		if p, ok := framePitch(frame, sampleRate, minLag, maxLag); ok {
			out = append(out, p)
		}
	}
	return out
}

// framePitch picks the lag with the highest normalized autocorrelation.
func framePitch(frame []float64, sampleRate, minLag, maxLag int) (float64, bool) {
	if len(frame) <= maxLag {
		return 0, false
	}

	var energy float64
	for _, s := range frame {
		energy += s * s
	}
	if energy == 0 {
		return 0, false
	}

	bestLag, bestCorr := 0, 0.0
	for lag := minLag; lag <= maxLag; lag++ {
		var corr float64
		for i := 0; i+lag < len(frame); i++ {
			corr += frame[i] * frame[i+lag]
		}
		corr /= energy
		if corr > bestCorr {
			bestLag, bestCorr = lag, corr
		}
	}
	if bestLag == 0 || bestCorr < voicedMinCorr {
		return 0, false
	}
	return float64(sampleRate) / float64(bestLag), true
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}
