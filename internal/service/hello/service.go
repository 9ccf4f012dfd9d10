// Package hello provides the greeting used by the /hello/service endpoint.
package hello

import "context"

// Greeting is the value every Service implementation in production returns.
const Greeting = "Hello service!"

// Service produces a greeting independent of any transport.
type Service interface {
	GetHello(ctx context.Context) string
}

type staticService struct{}

// NewService returns the stateless Service. A single instance is safe to share across requests.
func NewService() Service {
	return staticService{}
}

func (staticService) GetHello(context.Context) string {
	return Greeting
}
