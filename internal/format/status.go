package format

import "strconv"

// Bucket is the severity class of an HTTP status code.
type Bucket string

const (
	BucketNeutral     Bucket = "neutral"
	BucketSuccess     Bucket = "success"
	BucketRedirect    Bucket = "redirect"
	BucketClientError Bucket = "client-error"
	BucketServerError Bucket = "server-error"
)

// Buckets lists every bucket from lowest to highest status.
var Buckets = []Bucket{BucketNeutral, BucketSuccess, BucketRedirect, BucketClientError, BucketServerError}

// bucketColors are the display colors shared by every shell.
var bucketColors = map[Bucket]string{
	BucketNeutral:     "#6b7280",
	BucketSuccess:     "#16a34a",
	BucketRedirect:    "#2563eb",
	BucketClientError: "#d97706",
	BucketServerError: "#dc2626",
}

// Color returns the bucket's hex display color.
func (b Bucket) Color() string {
	if c, ok := bucketColors[b]; ok {
		return c
	}
	return bucketColors[BucketNeutral]
}

// Classify buckets an optional status code. A nil code is neutral.
func Classify(code *int) Bucket {
	if code == nil {
		return BucketNeutral
	}
	return ClassifyCode(*code)
}

// ClassifyCode buckets a status code. Every int maps to exactly one bucket.
func ClassifyCode(code int) Bucket {
	switch {
	case code < 200:
		return BucketNeutral
	case code < 300:
		return BucketSuccess
	case code < 400:
		return BucketRedirect
	case code < 500:
		return BucketClientError
	default:
		return BucketServerError
	}
}

var statusText = map[int]string{
	200: "OK",
	201: "Created",
	204: "No Content",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable",
}

// StatusText returns the reason phrase for the codes the client knows about.
// Codes outside that table get "" with no generic fallback.
func StatusText(code int) string {
	return statusText[code]
}

// StatusLabel renders "404 Not Found", "418" for unknown codes, and "" when absent.
func StatusLabel(code *int) string {
	if code == nil {
		return ""
	}
	label := strconv.Itoa(*code)
	if text := StatusText(*code); text != "" {
		label += " " + text
	}
	return label
}
