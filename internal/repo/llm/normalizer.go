package llm

import (
	"context"
	"fmt"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/opty-app/opty-search/internal/config"
	"github.com/opty-app/opty-search/internal/usecase"
)

const systemPrompt = `Você é um assistente de busca de produtos. Reescreva a ` +
	`consulta do usuário como termos de busca curtos e objetivos para um site ` +
	`de e-commerce brasileiro. Remova palavras irrelevantes, mantenha marca, ` +
	`modelo e características essenciais. Responda apenas com os termos de ` +
	`busca, sem pontuação extra e sem explicações.`

type queryNormalizer struct {
	genkit *genkit.Genkit
	model  string
}

// NewQueryNormalizer builds the AI-backed query rewriter. Without an API
// key the returned normalizer passes queries through unchanged.
func NewQueryNormalizer(conf *config.Config) usecase.QueryNormalizer {
	if conf.LLM.GoogleAIAPIKey == "" {
		return &passthroughNormalizer{}
	}

	googleAI := &googlegenai.GoogleAI{
		APIKey: conf.LLM.GoogleAIAPIKey,
	}
	g := genkit.Init(context.Background(), genkit.WithPlugins(googleAI))

	return &queryNormalizer{
		genkit: g,
		model:  conf.LLM.Model,
	}
}

func (n *queryNormalizer) Normalize(ctx context.Context, query string) (string, error) {
	response, err := genkit.Generate(ctx, n.genkit,
		ai.WithModelName(n.model),
		ai.WithMessages(
			ai.NewSystemTextMessage(systemPrompt),
			ai.NewUserTextMessage(query),
		),
	)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	normalized := strings.TrimSpace(response.Text())
	if normalized == "" {
		return "", fmt.Errorf("empty normalization for query %q", query)
	}

	log.Debugw(ctx, "query normalized", "raw", query, "normalized", normalized)
	return normalized, nil
}

// passthroughNormalizer is used when no AI credentials are configured.
type passthroughNormalizer struct{}

func (passthroughNormalizer) Normalize(ctx context.Context, query string) (string, error) {
	return query, nil
}
