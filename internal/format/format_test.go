package format

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestClassifyCode_Boundaries(t *testing.T) {
	tests := []struct {
		code int
		want Bucket
	}{
		{math.MinInt, BucketNeutral},
		{-1, BucketNeutral},
		{0, BucketNeutral},
		{100, BucketNeutral},
		{199, BucketNeutral},
		{200, BucketSuccess},
		{204, BucketSuccess},
		{299, BucketSuccess},
		{300, BucketRedirect},
		{399, BucketRedirect},
		{400, BucketClientError},
		{404, BucketClientError},
		{499, BucketClientError},
		{500, BucketServerError},
		{599, BucketServerError},
		{math.MaxInt, BucketServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCode(tt.code), "code %d", tt.code)
	}
}

func TestClassifyCode_Partition(t *testing.T) {
	counts := map[Bucket]int{}
	for code := -50; code <= 700; code++ {
		counts[ClassifyCode(code)]++
	}

	assert.Equal(t, 250, counts[BucketNeutral])
	assert.Equal(t, 100, counts[BucketSuccess])
	assert.Equal(t, 100, counts[BucketRedirect])
	assert.Equal(t, 100, counts[BucketClientError])
	assert.Equal(t, 201, counts[BucketServerError])
}

func TestClassify_NilIsNeutral(t *testing.T) {
	assert.Equal(t, BucketNeutral, Classify(nil))
	assert.Equal(t, BucketClientError, Classify(intPtr(404)))
}

func TestBucketColor_Distinct(t *testing.T) {
	seen := map[string]Bucket{}
	for _, b := range []Bucket{BucketNeutral, BucketSuccess, BucketRedirect, BucketClientError, BucketServerError} {
		c := b.Color()
		require.NotEmpty(t, c)
		_, dup := seen[c]
		assert.False(t, dup, "color %s reused by %s", c, b)
		seen[c] = b
	}
	assert.Equal(t, BucketNeutral.Color(), Bucket("bogus").Color())
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "OK", StatusText(200))
	assert.Equal(t, "Created", StatusText(201))
	assert.Equal(t, "No Content", StatusText(204))
	assert.Equal(t, "Bad Request", StatusText(400))
	assert.Equal(t, "Unauthorized", StatusText(401))
	assert.Equal(t, "Forbidden", StatusText(403))
	assert.Equal(t, "Not Found", StatusText(404))
	assert.Equal(t, "Internal Server Error", StatusText(500))
	assert.Equal(t, "Bad Gateway", StatusText(502))
	assert.Equal(t, "Service Unavailable", StatusText(503))

	// No generic fallback outside the table.
	assert.Equal(t, "", StatusText(202))
	assert.Equal(t, "", StatusText(418))
	assert.Equal(t, "", StatusText(301))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "", StatusLabel(nil))
	assert.Equal(t, "404 Not Found", StatusLabel(intPtr(404)))
	assert.Equal(t, "418", StatusLabel(intPtr(418)))
}

func TestPrettyJSON(t *testing.T) {
	out, ok := PrettyJSON(`{"error":"missing"}`)
	require.True(t, ok)
	assert.Equal(t, "{\n  \"error\": \"missing\"\n}", out)

	out, ok = PrettyJSON(`{"b":1,"a":[1,2,{"c":null}],"d":1.50}`)
	require.True(t, ok)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    1,\n    2,\n    {\n      \"c\": null\n    }\n  ],\n  \"d\": 1.50\n}", out)

	out, ok = PrettyJSON("  []\n")
	require.True(t, ok)
	assert.Equal(t, "[]", out)
}

func TestPrettyJSON_InvalidUnchanged(t *testing.T) {
	for _, in := range []string{"", "   ", "{invalid", "<html></html>", "plain text"} {
		out, ok := PrettyJSON(in)
		assert.False(t, ok, "input %q", in)
		assert.Equal(t, in, out)
		assert.Equal(t, in, FormatJSON(in))
	}
}

func TestFormatJSON_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"a":1}`,
		`[1,"two",true,false,null,{"x":{"y":[]}}]`,
		`"just a string"`,
		`42`,
		`{"unicode":"café","escaped":"line\nbreak","html":"<b>&</b>"}`,
	}

	for _, in := range inputs {
		var want, got any
		require.NoError(t, json.Unmarshal([]byte(in), &want))
		require.NoError(t, json.Unmarshal([]byte(FormatJSON(in)), &got))
		assert.Equal(t, want, got, "input %s", in)
	}
}
