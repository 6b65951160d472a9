// Package ai implements service.ProductAssistant on Gemini.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainerrors "marketsync/internal/domain/errors"
	"marketsync/internal/domain/service"
	"marketsync/internal/errors"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
)

const maxRelatedProducts = 5

const identifyPrompt = `You are an AI assistant designed to identify products in images.
Analyze the image provided and identify the main product shown.
Provide a concise and specific identification of the product, for example "red t-shirt" or "iPhone 15 Pro".
Answer with JSON: {"productIdentification": "<name>"}.`

const relatedPrompt = `You are an expert in retail and product association.
Given the product %q, suggest up to %d commercially relevant products that a user might also be interested in purchasing.
These could be complementary products, accessories, or popular alternatives.
Focus on suggesting products that are likely to be in a retail catalog.
%sProvide only a list of product names, concise and suitable for use as search terms.
Answer with JSON: {"relatedProductNames": ["<name>", ...]}.`

// generator is the part of *genai.GenerativeModel the assistant uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiAssistant calls a Gemini model under a request budget.
type GeminiAssistant struct {
	model   generator
	limiter *rate.Limiter
	timeout time.Duration
	logger  *slog.Logger
}

// NewGeminiAssistant creates an assistant. requestsPerMinute <= 0 disables the budget.
func NewGeminiAssistant(model generator, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *GeminiAssistant {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMinute)), requestsPerMinute)
	}

	return &GeminiAssistant{
		model:   model,
		limiter: limiter,
		timeout: timeout,
		logger:  logger,
	}
}

// IdentifyProduct implements service.ProductAssistant.
func (a *GeminiAssistant) IdentifyProduct(ctx context.Context, image []byte, mimeType, lang string) (string, error) {
	if len(image) == 0 {
		return "", errors.Wrap(service.ErrNoProductIdentified, "empty image")
	}

	var out struct {
		ProductIdentification string `json:"productIdentification"`
	}
	parts := []genai.Part{
		genai.Text(identifyPrompt + languageHint(lang)),
		genai.ImageData(imageFormat(mimeType), image),
	}
	if err := a.generate(ctx, &out, parts...); err != nil {
		return "", err
	}

	name := strings.TrimSpace(out.ProductIdentification)
	if name == "" {
		return "", service.ErrNoProductIdentified
	}

	return name, nil
}

// RelatedProducts implements service.ProductAssistant.
func (a *GeminiAssistant) RelatedProducts(ctx context.Context, req service.RelatedProductsRequest) ([]string, error) {
	var catalogHint string
	if req.Category != "" {
		catalogHint += fmt.Sprintf("The product belongs to the category %q.\n", req.Category)
	}
	if len(req.CatalogNames) > 0 {
		catalogHint += fmt.Sprintf("Consider the following known products from the catalog: %s\n", strings.Join(req.CatalogNames, ", "))
	}

	var out struct {
		RelatedProductNames []string `json:"relatedProductNames"`
	}
	prompt := fmt.Sprintf(relatedPrompt, req.ProductName, maxRelatedProducts, catalogHint) + languageHint(req.Lang)
	if err := a.generate(ctx, &out, genai.Text(prompt)); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(out.RelatedProductNames))
	for _, name := range out.RelatedProductNames {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) > maxRelatedProducts {
		names = names[:maxRelatedProducts]
	}

	return names, nil
}

func (a *GeminiAssistant) generate(ctx context.Context, out any, parts ...genai.Part) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return domainerrors.ErrAIUnavailable.WrapMessage("rate limiter: " + err.Error())
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	resp, err := a.model.GenerateContent(ctx, parts...)
	if err != nil {
		a.logger.Warn("Generate content failed", slog.Any("error", err))

		return domainerrors.ErrAIUnavailable.WrapMessage(err.Error())
	}

	text := responseText(resp)
	if text == "" {
		return domainerrors.ErrAINoResult
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), out); err != nil {
		a.logger.Warn("Unparseable model answer", slog.Any("error", err), slog.String("answer", text))

		return domainerrors.ErrAINoResult.WrapMessage("unparseable answer")
	}

	return nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return strings.TrimSpace(b.String())
}

// stripCodeFence removes a ```json fence some models wrap answers in.
func stripCodeFence(text string) string {
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}

func imageFormat(mimeType string) string {
	format := strings.TrimPrefix(strings.ToLower(mimeType), "image/")
	if format == "" {
		return "jpeg"
	}

	return format
}

func languageHint(lang string) string {
	if lang == "" {
		return ""
	}

	return fmt.Sprintf("\nAnswer in the language with code %q.", lang)
}
