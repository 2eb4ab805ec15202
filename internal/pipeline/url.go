package pipeline

// BuildURL joins the request target exactly as typed. Nothing is encoded or
// validated here; a malformed result is rejected by the transport.
func BuildURL(base, path, query string) string {
	url := base + path
	if query != "" {
		url += "?" + query
	}
	return url
}
