package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	config "github.com/xilidan/interview/config/interview"
	"github.com/xilidan/interview/gateways/web"
	"github.com/xilidan/interview/pkg/logger"
	"github.com/xilidan/interview/services/interview/audio"
	"github.com/xilidan/interview/services/interview/clients"
	"github.com/xilidan/interview/services/interview/clients/canned"
	"github.com/xilidan/interview/services/interview/clients/gemini"
	"github.com/xilidan/interview/services/interview/clients/guard"
	"github.com/xilidan/interview/services/interview/clients/openai"
	"github.com/xilidan/interview/services/interview/prompts"
	"github.com/xilidan/interview/services/interview/reporter"
	"github.com/xilidan/interview/services/interview/storage"
	"github.com/xilidan/interview/services/interview/usecase"
)

func main() {
	log := logger.Default()
	log.Info("initializing interview service")

	log.Debug("loading configuration")
	cfg := config.MustLoad()

	log = logger.New(logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		Output:     os.Stderr,
		AddSource:  true,
		JSONFormat: cfg.LogJSON,
	})
	logger.SetDefault(log)
	log.Info("configuration loaded successfully",
		slog.Int("port", cfg.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.String("stt_provider", cfg.LLM.STTProvider),
		slog.Bool("auth_enabled", cfg.JWTSecret != ""))

	ctx := logger.WithContext(context.Background(), log)
	rootCtx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer func() {
		log.Info("canceling root context")
		cancel()
	}()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("application terminated with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("application terminated successfully")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.Debug("opening storage", slog.String("driver", cfg.Database.Driver))
	store, err := storage.Open(ctx, cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("storage ready")

	tmpl, err := prompts.Load()
	if err != nil {
		return err
	}

	gen, tr, err := newClients(ctx, cfg.LLM, tmpl)
	if err != nil {
		return err
	}

	g := guard.New(guard.Config{
		RPS:        cfg.LLM.RPS,
		Burst:      cfg.LLM.Burst,
		MaxRetries: cfg.LLM.MaxRetries,
		RetryDelay: cfg.LLM.RetryDelay,
		Timeout:    cfg.LLM.Timeout,
	})

	uc := usecase.New(usecase.Deps{
		Storage:     store,
		Generator:   g.Generator(gen),
		Transcriber: g.Transcriber(tr),
		Prompts:     tmpl,
		Audio: audio.NewDownloader(audio.DownloaderConfig{
			MaxBytes: cfg.Audio.MaxBytes,
			Timeout:  cfg.Audio.DownloadTimeout,
			TempDir:  cfg.Audio.TempDir,
		}),
		Converter: audio.NewConverter(cfg.Audio.FFmpeg, cfg.Audio.TempDir),
	})

	rep := reporter.New(uc, reporter.Config{
		Timeout:   cfg.Report.Timeout,
		Retention: cfg.Report.Retention,
	}, log)

	srv := web.New(cfg, uc, rep, log)
	return srv.Start(ctx)
}

// newClients builds the text generator and the transcriber. Each gets its
// own client so LLM_MODEL and STT_MODEL can differ on the same provider.
func newClients(ctx context.Context, cfg config.LLMConfig, tmpl *prompts.Prompts) (clients.Generator, clients.Transcriber, error) {
	instruction, err := tmpl.Render(prompts.Transcribe, nil)
	if err != nil {
		return nil, nil, err
	}
	offlineGen, offlineTr := canned.Offline()

	var gen clients.Generator
	switch cfg.Provider {
	case config.ProviderGemini:
		c, err := gemini.NewClient(ctx, gemini.Config{APIKey: cfg.GoogleAPIKey, Model: cfg.Model})
		if err != nil {
			return nil, nil, err
		}
		gen = c
	case config.ProviderOpenAI:
		gen = openai.NewClient(openai.Config{APIKey: cfg.OpenAIAPIKey, BaseURL: cfg.OpenAIBaseURL, Model: cfg.Model})
	case config.ProviderCanned:
		gen = offlineGen
	default:
		return nil, nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.Provider)
	}

	var tr clients.Transcriber
	switch cfg.STTProvider {
	case config.ProviderGemini:
		c, err := gemini.NewClient(ctx, gemini.Config{APIKey: cfg.GoogleAPIKey, Model: cfg.STTModel, Instruction: instruction})
		if err != nil {
			return nil, nil, err
		}
		tr = c
	case config.ProviderOpenAI:
		tr = openai.NewClient(openai.Config{APIKey: cfg.OpenAIAPIKey, BaseURL: cfg.OpenAIBaseURL, STTModel: cfg.STTModel})
	case config.ProviderCanned:
		tr = offlineTr
	default:
		return nil, nil, fmt.Errorf("unknown STT_PROVIDER %q", cfg.STTProvider)
	}

	return gen, tr, nil
}
