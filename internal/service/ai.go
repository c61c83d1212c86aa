package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"catedra-calendar/internal/calendar"
	"catedra-calendar/internal/config"
	"catedra-calendar/internal/logger"
	"catedra-calendar/internal/model"
)

// AIService wraps an OpenAI-compatible chat-completions endpoint for the
// voice assistant, the weekly report and the innovation tip. It is optional:
// with no API key every caller gets its documented fallback.
type AIService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{baseURL: cfg.BaseURL, apiKey: cfg.APIKey, model: cfg.Model, client: &http.Client{}}
}

func (s *AIService) enabled() bool { return s.apiKey != "" && s.baseURL != "" }

func (s *AIService) chat(ctx context.Context, system, user string) (string, error) {
	body := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("llm status %d: %s", resp.StatusCode, data)
	}

	data, _ := io.ReadAll(resp.Body)
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty choices")
	}
	return result.Choices[0].Message.Content, nil
}

// stripFences removes markdown code fences the model likes to wrap JSON in.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseVoice extracts {text, date} from a dictated utterance. The fallback is
// a hard contract, not an optimization: on ANY failure (assistant disabled,
// transport error, malformed reply, missing fields) the result is the literal
// utterance dated today, and no error ever escapes.
func (s *AIService) ParseVoice(ctx context.Context, utterance, today string) model.VoiceResult {
	fallback := model.VoiceResult{Text: utterance, Date: today}
	if !s.enabled() {
		return fallback
	}

	system := "Eres un asistente de calendario. Devuelve solo JSON."
	prompt := fmt.Sprintf("Analiza: %q. Hoy es %s. Extrae tarea (\"text\") y fecha (\"date\" YYYY-MM-DD). Devuelve JSON: {\"text\": \"...\", \"date\": \"...\"}", utterance, today)

	raw, err := s.chat(ctx, system, prompt)
	if err != nil {
		logger.Warn("voice.parse failed, using literal text", "err", err)
		return fallback
	}
	var parsed model.VoiceResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		logger.Warn("voice.parse bad json, using literal text", "err", err)
		return fallback
	}
	if parsed.Text == "" {
		parsed.Text = utterance
	}
	if parsed.Date == "" {
		parsed.Date = today
	}
	if _, err := calendar.ParseDay(parsed.Date); err != nil {
		parsed.Date = today
	}
	return parsed
}

// WeeklyReport writes a short executive summary of the given entries.
func (s *AIService) WeeklyReport(ctx context.Context, entries []model.Entry) (string, error) {
	if len(entries) == 0 {
		return "No hay suficiente actividad esta semana para generar un reporte.", nil
	}
	if !s.enabled() {
		return "", fmt.Errorf("assistant not configured")
	}

	var sb strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&sb, "- [%s] %s: %s\n", e.Date, e.Person, e.Text)
	}
	system := "Actúa como secretario. Tono formal. Texto plano."
	prompt := fmt.Sprintf("Genera un RESUMEN EJECUTIVO SEMANAL breve (max 150 palabras) de estas tareas:\n%sEstructura: 1. Hitos, 2. Equipo, 3. Pasos.", sb.String())

	report, err := s.chat(ctx, system, prompt)
	if err != nil {
		return "", fmt.Errorf("weekly report: %w", err)
	}
	return report, nil
}

// InnovationTip fetches a one-liner for the banner area. Nil on any failure;
// the tip is decoration, never worth an error path.
func (s *AIService) InnovationTip(ctx context.Context) *model.Tip {
	if !s.enabled() {
		return nil
	}
	prompt := "Genera un consejo muy breve (máximo 15 palabras) sobre innovación en el comercio minorista. Devuelve JSON: {\"title\": \"TITULO\", \"content\": \"Consejo\"}"
	raw, err := s.chat(ctx, "Devuelve solo JSON.", prompt)
	if err != nil {
		return nil
	}
	var tip model.Tip
	if err := json.Unmarshal([]byte(stripFences(raw)), &tip); err != nil || tip.Title == "" {
		return nil
	}
	return &tip
}
