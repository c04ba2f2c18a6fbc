package jwt

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	ctx := context.Background()
	token, err := Generate(ctx, 7, "secret")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	id, err := ParseUserID(ctx, token, "secret")
	if err != nil {
		t.Fatalf("ParseUserID() error = %v", err)
	}
	if id != 7 {
		t.Errorf("user id = %d, want 7", id)
	}

	if _, err := ParseUserID(ctx, token, "other"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestExpiredToken(t *testing.T) {
	ctx := context.Background()
	token, err := GenerateWithTTL(ctx, 1, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateWithTTL() error = %v", err)
	}
	if _, err := ParseUserID(ctx, token, "secret"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseTokenFromHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer ", wantErr: true},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		got, err := ParseTokenFromHeader(r)
		if (err != nil) != tt.wantErr {
			t.Errorf("header %q: err = %v, wantErr %v", tt.header, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("header %q: token = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestUserIDContext(t *testing.T) {
	ctx := WithUserID(context.Background(), 9)
	if id, ok := UserIDFromContext(ctx); !ok || id != 9 {
		t.Errorf("UserIDFromContext() = %d, %v", id, ok)
	}
	if _, ok := UserIDFromContext(context.Background()); ok {
		t.Error("expected no user id")
	}
}
