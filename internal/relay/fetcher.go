package relay

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hahaha8459812/simple-ai-drawing/internal/logger"
	"github.com/hahaha8459812/simple-ai-drawing/internal/utils"
)

// EncodedImage is image bytes in standard base64.
type EncodedImage string

type Fetcher interface {
	Fetch(ctx context.Context, imageURL string) (EncodedImage, error)
}

// HTTPImageFetcher downloads the whole image into memory and base64 encodes it. No retries.
type HTTPImageFetcher struct {
	client *http.Client

	// 0 means unlimited
	maxBytes int64
}

func NewHTTPImageFetcher(timeout time.Duration, maxBytes int64) *HTTPImageFetcher {
	return &HTTPImageFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxBytes,
	}
}

func (f *HTTPImageFetcher) Fetch(ctx context.Context, imageURL string) (EncodedImage, error) {
	log := logger.FromContextOrDiscard(ctx)
	log.Infof("开始下载图片: %s", utils.Truncate(imageURL, 100))

	data, err := f.download(ctx, imageURL)
	if err != nil {
		log.Errorf("下载图片失败: %s", err)
		return "", &FetchError{Cause: err}
	}
	log.Infof("图片下载成功，大小: %d bytes", len(data))

	encoded := base64.StdEncoding.EncodeToString(data)
	log.Infof("Base64转换完成，长度: %d", len(encoded))
	return EncodedImage(encoded), nil
}

func (f *HTTPImageFetcher) download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if f.maxBytes <= 0 {
		return io.ReadAll(resp.Body)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("image size %d exceeds limit of %d bytes", resp.ContentLength, f.maxBytes)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("image exceeds limit of %d bytes", f.maxBytes)
	}
	return data, nil
}
