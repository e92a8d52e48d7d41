// Package rpc holds the connect plumbing shared by every service handler.
package rpc

import (
	"connectrpc.com/connect"
	"github.com/bytedance/sonic"
)

// JSONCodec replaces connect's protojson codec so plain Go structs can be
// used as request and response messages. It registers under the same
// "json" name, so clients send Content-Type: application/json.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return sonic.Unmarshal(data, v)
}

// Procedure returns the connect procedure path for a service method.
func Procedure(service, method string) string {
	return "/" + service + "/" + method
}

// HandlerOptions returns the options every service handler is built with.
func HandlerOptions(interceptors ...connect.Interceptor) []connect.HandlerOption {
	return []connect.HandlerOption{
		connect.WithCodec(JSONCodec{}),
		connect.WithInterceptors(interceptors...),
	}
}
