package format

import "golang.org/x/net/http/httpguts"

// ServiceName identifies this service in the outbound User-Agent.
const ServiceName = "Readable"

// Version is stamped at build time:
//
//	go build -ldflags "-X github.com/use-agent/readable/format.Version=1.2.3"
var Version = "0.3.0"

// DefaultUserAgent is sent upstream when the caller did not supply a usable
// User-Agent. It is computed once at package init and never changes.
var DefaultUserAgent = ServiceName + "/" + Version

// UserAgent returns the caller's User-Agent when it is a valid header value,
// otherwise DefaultUserAgent.
func UserAgent(header string) string {
	if header == "" || !httpguts.ValidHeaderFieldValue(header) {
		return DefaultUserAgent
	}
	return header
}
