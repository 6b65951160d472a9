package ai

import (
	"context"
	"log/slog"

	"marketsync/config"
	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

// Params holds dependencies for the ProductAssistant, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProductAssistant returns a Gemini assistant, or an unavailable one when
// no API key is configured.
func NewProductAssistant(params Params) (service.ProductAssistant, error) {
	cfg := params.Config.AI
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("AI API key not configured, product assistant disabled")

		return unavailableAssistant{}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "create gemini client")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultModel
	}
	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Gemini client")

			return client.Close()
		},
	})
	params.Logger.Info("Product assistant ready", slog.String("model", modelName))

	return NewGeminiAssistant(model, cfg.RequestsPerMinute, cfg.Timeout, params.Logger), nil
}

// unavailableAssistant answers every call with ErrAIUnavailable.
type unavailableAssistant struct{}

func (unavailableAssistant) IdentifyProduct(context.Context, []byte, string, string) (string, error) {
	return "", domainerrors.ErrAIUnavailable
}

func (unavailableAssistant) RelatedProducts(context.Context, service.RelatedProductsRequest) ([]string, error) {
	return nil, domainerrors.ErrAIUnavailable
}

// Module provides the product assistant FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProductAssistant),
)
