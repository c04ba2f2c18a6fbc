package gemini

import (
	"errors"
	"testing"

	"github.com/avast/retry-go/v4"
	"google.golang.org/genai"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		recoverable bool
	}{
		{name: "bad request", err: genai.APIError{Code: 400, Message: "invalid"}, recoverable: false},
		{name: "rate limited", err: genai.APIError{Code: 429, Message: "quota"}, recoverable: true},
		{name: "server error", err: genai.APIError{Code: 503, Message: "unavailable"}, recoverable: true},
		{name: "transport", err: errors.New("connection reset"), recoverable: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retry.IsRecoverable(classify(tt.err)); got != tt.recoverable {
				t.Errorf("IsRecoverable() = %v, want %v", got, tt.recoverable)
			}
		})
	}
}
