// Package ai is the boundary to the generative-text collaborator (the
// Gemini REST API). Every operation returns either the generated text or a
// fixed localized fallback string; failures are logged at the boundary and
// never propagate.
package ai

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Wire shapes for the generateContent call.
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Fallback strings surfaced instead of errors, one per operation.
const (
	fallbackSummary      = "Não foi possível gerar o resumo automático."
	fallbackDiagnosis    = "Erro ao processar sintomas."
	fallbackPrescription = "Erro ao gerar rascunho."
)

// Cache memoizes responses by prompt hash. Optional.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

type Options struct {
	BaseURL    string
	APIKey     string
	FlashModel string
	ProModel   string
	Timeout    time.Duration
	Cache      Cache
	Log        zerolog.Logger
}

type Client struct {
	http       *http.Client
	baseURL    string
	apiKey     string
	flashModel string
	proModel   string
	cache      Cache
	log        zerolog.Logger
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:       &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		flashModel: opts.FlashModel,
		proModel:   opts.ProModel,
		cache:      opts.Cache,
		log:        opts.Log.With().Str("component", "ai").Logger(),
	}
}

// Configured reports whether an API key is present. Unconfigured clients
// answer every call with the fallback string.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Summarize produces a short professional summary of a patient's history.
func (c *Client) Summarize(ctx context.Context, patientName string, history []string) string {
	prompt := fmt.Sprintf(
		"Resuma o histórico médico do paciente %s. Histórico: %s. Seja breve e profissional.",
		patientName, strings.Join(history, ", "),
	)
	return c.generate(ctx, c.flashModel, prompt, 0.7, fallbackSummary)
}

// SuggestDiagnoses returns diagnostic suggestions for free-text symptoms,
// including the mandatory clinical-judgment disclaimer.
func (c *Client) SuggestDiagnoses(ctx context.Context, symptoms string) string {
	prompt := fmt.Sprintf(
		"Como assistente de apoio à decisão médica, analise os seguintes sintomas: %q. "+
			"Forneça 3 possíveis causas diagnósticas e recomendações de exames. "+
			"IMPORTANTE: Adicione um aviso de que isso não substitui o julgamento clínico. "+
			"Responda em Português do Brasil.",
		symptoms,
	)
	return c.generate(ctx, c.proModel, prompt, 0.4, fallbackDiagnosis)
}

// DraftPrescription returns a formatted prescription draft for a diagnosis.
func (c *Client) DraftPrescription(ctx context.Context, diagnosis string) string {
	prompt := fmt.Sprintf(
		"Gere um rascunho de prescrição médica formatado para o diagnóstico: %s. "+
			"Inclua dosagem e orientações básicas de uso.",
		diagnosis,
	)
	return c.generate(ctx, c.flashModel, prompt, 0.5, fallbackPrescription)
}

func (c *Client) generate(ctx context.Context, model, prompt string, temperature float64, fallback string) string {
	if !c.Configured() {
		c.log.Warn().Msg("generative-text call skipped: no API key configured")
		return fallback
	}

	key := promptKey(model, prompt)
	if c.cache != nil {
		if text, ok := c.cache.Get(ctx, key); ok {
			return text
		}
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{Temperature: temperature},
	})
	if err != nil {
		c.log.Error().Err(err).Msg("encode generate request")
		return fallback
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.log.Error().Err(err).Msg("build generate request")
		return fallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("model", model).Msg("generate call failed")
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Error().Int("status", resp.StatusCode).Str("model", model).Str("body", string(raw)).Msg("generate call rejected")
		return fallback
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Error().Err(err).Msg("decode generate response")
		return fallback
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		c.log.Error().Str("model", model).Msg("generate response had no candidates")
		return fallback
	}

	text := out.Candidates[0].Content.Parts[0].Text
	if c.cache != nil {
		c.cache.Set(ctx, key, text)
	}
	return text
}

func promptKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}
