package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-service/internal/platform/logging"
	hellosvc "github.com/janisto/hello-service/internal/service/hello"
)

const (
	// StringGreeting is the literal served by /hello/string.
	StringGreeting = "Hello string!"
	// DataGreeting is the text of the Message served by /hello/data.
	DataGreeting = "Hello data!"

	contentTypeText = "text/plain"
	tag             = "Hello"
)

// textRoute binds a GET path to a function producing its plain-text body.
type textRoute struct {
	operationID string
	path        string
	summary     string
	text        func(context.Context) string
}

// Register wires the hello routes into api. svc answers /hello/service.
func Register(api huma.API, svc hellosvc.Service) {
	routes := []textRoute{
		{
			operationID: "get-hello-string",
			path:        "/hello/string",
			summary:     "Return a literal greeting",
			text:        func(context.Context) string { return StringGreeting },
		},
		{
			operationID: "get-hello-service",
			path:        "/hello/service",
			summary:     "Return the greeting produced by the hello service",
			text:        svc.GetHello,
		},
	}
	for _, rt := range routes {
		registerText(api, rt)
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-hello-data",
		Method:      http.MethodGet,
		Path:        "/hello/data",
		Summary:     "Return a greeting message object",
		Tags:        []string{tag},
	}, dataHandler)
}

func registerText(api huma.API, rt textRoute) {
	huma.Register(api, huma.Operation{
		OperationID: rt.operationID,
		Method:      http.MethodGet,
		Path:        rt.path,
		Summary:     rt.summary,
		Tags:        []string{tag},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "OK",
				Content: map[string]*huma.MediaType{
					contentTypeText: {Schema: &huma.Schema{Type: huma.TypeString}},
				},
			},
		},
	}, func(ctx context.Context, _ *struct{}) (*TextOutput, error) {
		applog.LogInfo(ctx, "hello text", zap.String("path", rt.path))
		return &TextOutput{ContentType: contentTypeText, Body: []byte(rt.text(ctx))}, nil
	})
}

func dataHandler(ctx context.Context, _ *struct{}) (*DataOutput, error) {
	applog.LogInfo(ctx, "hello data", zap.String("path", "/hello/data"))
	return &DataOutput{Body: NewMessage(DataGreeting)}, nil
}
