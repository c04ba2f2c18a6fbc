package usecase

import (
	"context"
	"errors"

	"github.com/xilidan/interview/services/interview/audio"
	"github.com/xilidan/interview/services/interview/clients"
	"github.com/xilidan/interview/services/interview/entity"
	"github.com/xilidan/interview/services/interview/prompts"
	"github.com/xilidan/interview/services/interview/storage"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNoTranscript = errors.New("No transcript provided")
	ErrNoAnalysis   = errors.New("analysis not available")
	ErrVoiceResult  = errors.New("voice analysis reply did not match the expected shape")
)

type Usecase interface {
	CreateMeeting(ctx context.Context, req *entity.CreateMeetingRequest) (*entity.Meeting, error)
	ListMeetings(ctx context.Context) ([]entity.MeetingListItem, error)
	GetMeeting(ctx context.Context, id int64) (*entity.Meeting, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*entity.Meeting, error)
	GetAnalysis(ctx context.Context, id int64) (*entity.Analysis, error)

	Suggest(ctx context.Context, req *entity.SuggestionRequest) (*entity.SuggestionResponse, error)
	AnalyzeVoice(ctx context.Context, audioURL string) (*entity.VoiceAnalysis, error)
	GenerateReport(ctx context.Context, meetingID int64, audioURL string) error
}

type AudioSource interface {
	Download(ctx context.Context, url string) (string, error)
}

type AudioConverter interface {
	ToWAV(ctx context.Context, path string) (string, error)
}

type Deps struct {
	Storage     storage.Storage
	Generator   clients.Generator
	Transcriber clients.Transcriber
	Prompts     *prompts.Prompts
	Audio       AudioSource
	Converter   AudioConverter
}

type usecase struct {
	storage     storage.Storage
	generator   clients.Generator
	transcriber clients.Transcriber
	prompts     *prompts.Prompts
	audio       AudioSource
	converter   AudioConverter
	analyze     func(samples []float64, rate int) audio.Features
}

func New(deps Deps) Usecase {
	return &usecase{
		storage:     deps.Storage,
		generator:   deps.Generator,
		transcriber: deps.Transcriber,
		prompts:     deps.Prompts,
		audio:       deps.Audio,
		converter:   deps.Converter,
		analyze:     audio.Analyze,
	}
}
