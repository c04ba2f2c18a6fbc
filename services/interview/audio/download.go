package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/xilidan/interview/pkg/gen"
	"github.com/xilidan/interview/pkg/logger"
)

const defaultExt = ".mp3"

var (
	ErrInvalidURL = errors.New("invalid audio url")
	ErrTooLarge   = errors.New("audio file too large")
)

type DownloaderConfig struct {
	MaxBytes   int64
	Timeout    time.Duration
	TempDir    string
	Attempts   uint
	RetryDelay time.Duration
	HTTPClient *http.Client
}

type Downloader struct {
	client *http.Client
	cfg    DownloaderConfig
	ids    gen.UUIDGenerator
}

func NewDownloader(cfg DownloaderConfig) *Downloader {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 3
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = time.Second
	}
	return &Downloader{client: client, cfg: cfg, ids: gen.UUID()}
}

// Download fetches rawURL into a temporary file and returns its path. The
// file keeps the extension of the URL path so the converter can tell the
// container apart.
func (d *Downloader) Download(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	dst := filepath.Join(tempDir(d.cfg.TempDir), "interview-"+d.ids.NextString()+extension(u.Path))
	log := logger.With(ctx, "url", u.Redacted())

	err = retry.Do(
		func() error { return d.fetch(ctx, u.String(), dst) },
		retry.Context(ctx),
		retry.Attempts(d.cfg.Attempts),
		retry.Delay(d.cfg.RetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("audio download failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to download audio: %w", err)
	}

	log.Debug("downloaded audio", "path", dst)
	return dst, nil
}

func (d *Downloader) fetch(ctx context.Context, rawURL, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return retry.Unrecoverable(err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %s", resp.Status)
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return retry.Unrecoverable(err)
		}
		return err
	}
	if d.cfg.MaxBytes > 0 && resp.ContentLength > d.cfg.MaxBytes {
		return retry.Unrecoverable(fmt.Errorf("%w: %d bytes", ErrTooLarge, resp.ContentLength))
	}

	f, err := os.Create(dst)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to create temp file: %w", err))
	}
	defer f.Close()

	var body io.Reader = resp.Body
	if d.cfg.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, d.cfg.MaxBytes+1)
	}
	n, err := io.Copy(f, body)
	if err != nil {
		return err
	}
	if d.cfg.MaxBytes > 0 && n > d.cfg.MaxBytes {
		return retry.Unrecoverable(fmt.Errorf("%w: more than %d bytes", ErrTooLarge, d.cfg.MaxBytes))
	}
	return nil
}

func extension(p string) string {
	ext := strings.ToLower(path.Ext(p))
	if len(ext) < 2 || len(ext) > 5 {
		return defaultExt
	}
	return ext
}

func tempDir(dir string) string {
	if dir == "" {
		return os.TempDir()
	}
	return dir
}

// Cleanup removes the given files, ignoring empty and missing paths.
func Cleanup(ctx context.Context, paths ...string) {
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn(ctx, "failed to remove temp file", "path", p, "error", err)
		}
	}
}
