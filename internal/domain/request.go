package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/shhac/postie/internal/errors"
)

// Method is an HTTP method the client can send.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
	MethodPut  Method = "PUT"
)

// Methods lists the supported methods in display order.
var Methods = []Method{MethodGet, MethodPost, MethodPut}

// ParseMethod normalizes s and rejects anything outside Methods.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", apperrors.ValidationError{
		Field:   "method",
		Message: fmt.Sprintf("unsupported method %q (use GET, POST or PUT)", s),
	}
}

// AllowsBody reports whether a JSON body is attached for this method.
func (m Method) AllowsBody() bool {
	return m != MethodGet
}

// RequestConfig is a snapshot of the request form taken at submission time.
type RequestConfig struct {
	Method      Method
	BaseURL     string
	Path        string
	QueryString string
	UseAuth     bool
	Token       string
	JSONBody    string
}
