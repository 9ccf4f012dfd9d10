package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-service/internal/http/v1/hello"
	hellosvc "github.com/janisto/hello-service/internal/service/hello"
)

// Register wires every versioned HTTP route into api.
func Register(api huma.API, helloService hellosvc.Service) {
	hello.Register(api, helloService)
}
