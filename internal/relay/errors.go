package relay

import (
	"errors"
	"net/http"
	"strings"
)

const (
	MessageMissingParams = "缺少必需参数: imageUrl, prompt, geminiApiKey"
	MessageNoImage       = "API响应中未找到生成的图片"
	MessageBadReply      = "API响应解析失败"

	fetchPrefix  = "下载图片失败: "
	invokePrefix = "调用Gemini API失败: "
)

// ValidationError reports required request fields that were missing or empty.
// Its message is fixed and does not depend on which fields were missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return MessageMissingParams
}

func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

// FetchError is any failure to retrieve the source image.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fetchPrefix + e.Cause.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

func (e *FetchError) StatusCode() int {
	return http.StatusInternalServerError
}

// InvocationError is a transport failure or non-2xx reply from the generation API.
type InvocationError struct {
	Cause error
}

func (e *InvocationError) Error() string {
	return invokePrefix + e.Cause.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

func (e *InvocationError) StatusCode() int {
	return http.StatusInternalServerError
}

// ExtractionError means the generation API answered 2xx but no image could be taken from the reply.
// RawReply is kept for logging and never sent to the caller.
type ExtractionError struct {
	Reason string

	Cause error

	RawReply []byte
}

func (e *ExtractionError) Error() string {
	var b strings.Builder
	b.WriteString(invokePrefix)
	b.WriteString(e.Reason)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

func (e *ExtractionError) StatusCode() int {
	return http.StatusInternalServerError
}

// StatusOf maps an error to the HTTP status returned to the caller.
func StatusOf(err error) int {
	var coded interface{ StatusCode() int }
	if errors.As(err, &coded) {
		return coded.StatusCode()
	}
	return http.StatusInternalServerError
}
