package relay

import (
	"context"
	"errors"

	"github.com/hahaha8459812/simple-ai-drawing/internal/logger"
	"github.com/hahaha8459812/simple-ai-drawing/internal/model"
)

// Pipeline runs validate -> fetch -> invoke for one request. It holds no per-request state and is
// safe for concurrent use.
type Pipeline struct {
	fetcher Fetcher

	invoker Invoker

	defaults Defaults
}

func NewPipeline(fetcher Fetcher, invoker Invoker, defaults Defaults) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		invoker:  invoker,
		defaults: defaults,
	}
}

// Process returns the base64 image produced by the generation API. Any error ends the request,
// nothing is retried.
func (p *Pipeline) Process(ctx context.Context, payload model.ProcessImageRequest) (string, error) {
	r := &run{log: logger.FromContextOrDiscard(ctx)}

	r.enter(StageValidating)
	req, err := Validate(payload, p.defaults)
	if err != nil {
		return "", r.fail(err)
	}
	r.log.Infof("收到图生图请求，提示词: %s", req.Prompt)

	r.enter(StageFetching)
	image, err := p.fetcher.Fetch(ctx, req.ImageURL)
	if err != nil {
		return "", r.fail(err)
	}

	r.enter(StageInvoking)
	result, err := p.invoker.Invoke(ctx, InvokeParams{
		Endpoint: req.Endpoint,
		APIKey:   req.APIKey,
		Model:    req.Model,
		Prompt:   req.Prompt,
		Image:    image,
	})
	if err != nil {
		return "", r.fail(err)
	}

	r.enter(StageCompleted)
	r.log.Infof("图生图处理完成")
	return result, nil
}

type run struct {
	stage Stage

	log *logger.CustomLogger
}

func (r *run) enter(stage Stage) {
	r.log.Debugf("stage %s -> %s", r.stage, stage)
	r.stage = stage
}

func (r *run) fail(err error) error {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		r.log.Warnf("request failed while %s: missing fields %v", r.stage, validationErr.Fields)
	} else {
		r.log.Warnf("request failed while %s: %s", r.stage, err)
	}
	r.stage = StageErrored
	return err
}
