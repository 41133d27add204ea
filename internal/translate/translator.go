package translate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/psharma/contractguard/internal/lang"
	"github.com/psharma/contractguard/internal/model"
)

// maxChunkRunes is the per-request text limit imposed by the translation API
const maxChunkRunes = 4500

// minTranslateRunes: shorter spans are returned untouched (no signal to translate)
const minTranslateRunes = 5

// maxResponseBytes caps how much of a translation response is read
const maxResponseBytes = 2_000_000

// Client is the machine-translation collaborator. Calls are single-attempt:
// failure is returned to the caller, which is expected to continue without the
// translated variant rather than retry.
type Client struct {
	endpoint   string
	httpClient *http.Client
	detector   *lang.Detector
	cache      *gocache.Cache // Memoizes identical spans for the process lifetime
	limiter    *rate.Limiter
}

// NewClient creates a translation client from configuration
func NewClient(cfg model.TranslateConfig) *Client {
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 5
	}

	return &Client{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		detector: lang.NewDetector(),
		cache:    gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
	}
}

// Translate translates text into the target language. Text already in the
// target language is returned unchanged. Long text is split into chunks under
// the API limit and re-joined.
func (c *Client) Translate(ctx context.Context, text string, target model.Language) (string, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minTranslateRunes {
		return text, nil
	}

	if c.detector.Detect(text) == target {
		return text, nil
	}

	key := cacheKey(text, target)
	if cached, found := c.cache.Get(key); found {
		return cached.(string), nil
	}

	var out strings.Builder
	for i, chunk := range chunks(text, maxChunkRunes) {
		translated, err := c.translateChunk(ctx, chunk, target)
		if err != nil {
			return "", err
		}
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(translated)
	}

	result := out.String()
	c.cache.SetDefault(key, result)
	return result, nil
}

// translateChunk performs one API request
func (c *Client) translateChunk(ctx context.Context, text string, target model.Language) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", string(target))
	params.Set("dt", "t")
	params.Set("q", text)

	reqURL := fmt.Sprintf("%s/translate_a/single?%s", c.endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	return parseResponse(body)
}

// parseResponse extracts the translated text from the API's nested-array
// payload: [[["translated", "original", ...], ...], ...]
func parseResponse(body []byte) (string, error) {
	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty response")
	}

	segments, ok := raw[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected response shape")
	}

	var out strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if piece, ok := parts[0].(string); ok {
			out.WriteString(piece)
		}
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("no translation in response")
	}
	return out.String(), nil
}

// chunks splits text into rune-bounded chunks under the API limit
func chunks(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var result []string
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		result = append(result, string(runes[start:end]))
	}
	return result
}

// cacheKey builds a memoization key from the span and target language
func cacheKey(text string, target model.Language) string {
	hash := sha256.Sum256([]byte(text))
	return string(target) + ":" + hex.EncodeToString(hash[:])
}
