package httpclient

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/net/html/charset"
)

// decodeBody reverses the response Content-Encoding and transcodes the
// result to UTF-8 when the Content-Type declares another charset.
func decodeBody(body []byte, header http.Header) ([]byte, error) {
	body, err := decompress(body, header.Get("Content-Encoding"))
	if err != nil {
		return nil, err
	}
	return toUTF8(body, header.Get("Content-Type"))
}

// decompress undoes a comma-separated Content-Encoding list, last coding first.
func decompress(body []byte, contentEncoding string) ([]byte, error) {
	if contentEncoding == "" || len(body) == 0 {
		return body, nil
	}

	codings := strings.Split(contentEncoding, ",")
	for i := len(codings) - 1; i >= 0; i-- {
		coding := strings.ToLower(strings.TrimSpace(codings[i]))
		var err error
		switch coding {
		case "", "identity":
			continue
		case "gzip", "x-gzip":
			body, err = gunzip(body)
		case "br":
			body, err = io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		case "zstd":
			body, err = unzstd(body)
		default:
			return nil, fmt.Errorf("%s encoding not supported", coding)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s body: %w", coding, err)
		}
	}
	return body, nil
}

func gunzip(body []byte) ([]byte, error) {
	z, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = z.Close() }()
	return io.ReadAll(z)
}

func unzstd(body []byte) ([]byte, error) {
	d, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.DecodeAll(body, nil)
}

// toUTF8 only transcodes when the charset is named explicitly; bodies without
// a charset parameter are passed through untouched.
func toUTF8(body []byte, contentType string) ([]byte, error) {
	if contentType == "" || len(body) == 0 {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}
	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return body, nil
	}

	r, err := charset.NewReaderLabel(label, bytes.NewReader(body))
	if err != nil {
		// Unknown label: show the bytes as they came.
		return body, nil
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", label, err)
	}
	return out, nil
}
