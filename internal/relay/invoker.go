package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hahaha8459812/simple-ai-drawing/internal/logger"
	"github.com/hahaha8459812/simple-ai-drawing/internal/utils"
	"github.com/samber/lo"
)

const maxErrorBodyLength = 512

type InvokeParams struct {
	Endpoint string

	APIKey string

	Model string

	Prompt string

	Image EncodedImage
}

type Invoker interface {
	Invoke(ctx context.Context, params InvokeParams) (string, error)
}

// GeminiInvoker sends one synchronous generateContent call and returns the first inline image
// of the first candidate unchanged.
type GeminiInvoker struct {
	client *http.Client

	mimeType string
}

func NewGeminiInvoker(timeout time.Duration, mimeType string) *GeminiInvoker {
	return &GeminiInvoker{
		client: &http.Client{
			Timeout: timeout,
		},
		mimeType: mimeType,
	}
}

// GenerateContentURL joins endpoint and model into the generateContent URL. Trailing slashes on
// endpoint are ignored. The key travels as a query parameter, as the upstream API expects.
func GenerateContentURL(endpoint, model, apiKey string) string {
	return generateContentURL(endpoint, model, url.QueryEscape(apiKey))
}

func generateContentURL(endpoint, model, key string) string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", strings.TrimRight(endpoint, "/"), model, key)
}

func (g *GeminiInvoker) Invoke(ctx context.Context, params InvokeParams) (string, error) {
	log := logger.FromContextOrDiscard(ctx)
	log.Infof("开始调用Gemini API, 端点: %s, 模型: %s", params.Endpoint, params.Model)
	log.Debugf("完整URL: %s", generateContentURL(params.Endpoint, params.Model, utils.MaskSecret(params.APIKey)))

	reply, err := g.call(ctx, params)
	if err != nil {
		log.Errorf("调用Gemini API失败: %s", err)
		return "", &InvocationError{Cause: err}
	}
	log.Infof("Gemini API调用成功")

	image, err := extractImage(reply)
	if err != nil {
		log.Warnf("API响应中未找到图片数据，记录完整响应: %s", reply)
		return "", err
	}
	return image, nil
}

func (g *GeminiInvoker) call(ctx context.Context, params InvokeParams) ([]byte, error) {
	payload, err := json.Marshal(geminiGenerateContentRequest{
		Contents: []geminiContent{
			{
				Parts: []geminiPart{
					{Text: params.Prompt},
					{InlineData: &geminiInlineData{
						MimeType: g.mimeType,
						Data:     string(params.Image),
					}},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	endpoint := GenerateContentURL(params.Endpoint, params.Model, params.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, scrubKey(err, params.APIKey)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, scrubKey(err, params.APIKey)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, utils.Truncate(string(body), maxErrorBodyLength))
	}
	return body, nil
}

func extractImage(reply []byte) (string, error) {
	var parsed geminiGenerateContentResponse
	if err := json.Unmarshal(reply, &parsed); err != nil {
		return "", &ExtractionError{Reason: MessageBadReply, Cause: err, RawReply: reply}
	}
	if len(parsed.Candidates) == 0 || parsed.Candidates[0].Content == nil {
		return "", &ExtractionError{Reason: MessageNoImage, RawReply: reply}
	}
	part, found := lo.Find(parsed.Candidates[0].Content.Parts, func(p geminiPart) bool {
		return p.image() != nil
	})
	if !found {
		return "", &ExtractionError{Reason: MessageNoImage, RawReply: reply}
	}
	return part.image().Data, nil
}

// scrubKey masks the credential in transport errors, *url.Error prints the full request URL.
func scrubKey(err error, apiKey string) error {
	if apiKey == "" {
		return err
	}
	message := err.Error()
	masked := utils.MaskSecret(apiKey)
	message = strings.ReplaceAll(message, url.QueryEscape(apiKey), masked)
	message = strings.ReplaceAll(message, apiKey, masked)
	return &redactedError{message: message, err: err}
}

type redactedError struct {
	message string

	err error
}

func (e *redactedError) Error() string {
	return e.message
}

func (e *redactedError) Unwrap() error {
	return e.err
}
