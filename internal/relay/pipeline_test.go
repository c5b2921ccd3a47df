package relay

import (
	"context"
	"errors"
	"testing"

	"github.com/hahaha8459812/simple-ai-drawing/internal/logger"
	"github.com/hahaha8459812/simple-ai-drawing/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubFetcher struct {
	calls int
	url   string
	image EncodedImage
	err   error
}

func (f *stubFetcher) Fetch(_ context.Context, imageURL string) (EncodedImage, error) {
	f.calls++
	f.url = imageURL
	return f.image, f.err
}

type stubInvoker struct {
	calls  int
	params InvokeParams
	result string
	err    error
}

func (i *stubInvoker) Invoke(_ context.Context, params InvokeParams) (string, error) {
	i.calls++
	i.params = params
	return i.result, i.err
}

var validPayload = model.ProcessImageRequest{
	ImageURL:     "http://img/cat.jpg",
	Prompt:       "add a hat",
	GeminiAPIKey: "key",
}

func TestProcessSuccess(t *testing.T) {
	fetcher := &stubFetcher{image: "aW1hZ2U="}
	invoker := &stubInvoker{result: "ABC123=="}
	p := NewPipeline(fetcher, invoker, testDefaults)

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.NewContext(context.Background(), logger.NewCustomLogger(zap.New(core)))

	image, err := p.Process(ctx, validPayload)
	require.NoError(t, err)
	assert.Equal(t, "ABC123==", image)
	assert.Equal(t, "http://img/cat.jpg", fetcher.url)
	assert.Equal(t, InvokeParams{
		Endpoint: testDefaults.Endpoint,
		APIKey:   "key",
		Model:    testDefaults.Model,
		Prompt:   "add a hat",
		Image:    "aW1hZ2U=",
	}, invoker.params)
	assert.Equal(t, 1, logs.FilterMessage("stage invoking -> completed").Len())
}

func TestProcessValidationShortCircuits(t *testing.T) {
	fetcher := &stubFetcher{}
	invoker := &stubInvoker{}
	p := NewPipeline(fetcher, invoker, testDefaults)

	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logger.NewContext(context.Background(), logger.NewCustomLogger(zap.New(core)))

	payload := validPayload
	payload.Prompt = ""
	payload.GeminiAPIKey = ""
	_, err := p.Process(ctx, payload)
	assert.Equal(t, StageValidating, FailedStage(err))
	assert.Equal(t, 0, fetcher.calls)
	assert.Equal(t, 0, invoker.calls)
	assert.Equal(t, 1, logs.FilterMessage("request failed while validating: missing fields [prompt geminiApiKey]").Len())
}

func TestProcessFetchFailureSkipsInvoker(t *testing.T) {
	fetcher := &stubFetcher{err: &FetchError{Cause: errors.New("404 Not Found")}}
	invoker := &stubInvoker{}
	p := NewPipeline(fetcher, invoker, testDefaults)

	_, err := p.Process(context.Background(), validPayload)
	assert.Equal(t, StageFetching, FailedStage(err))
	assert.Equal(t, "下载图片失败: 404 Not Found", err.Error())
	assert.Equal(t, 0, invoker.calls)
}

func TestProcessInvokerFailure(t *testing.T) {
	fetcher := &stubFetcher{image: "aW1hZ2U="}
	invoker := &stubInvoker{err: &ExtractionError{Reason: MessageNoImage}}
	p := NewPipeline(fetcher, invoker, testDefaults)

	_, err := p.Process(context.Background(), validPayload)
	assert.Equal(t, StageInvoking, FailedStage(err))
	assert.Equal(t, 500, StatusOf(err))
	assert.Equal(t, 1, fetcher.calls)
}
