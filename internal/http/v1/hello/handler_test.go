package hello

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/janisto/hello-service/internal/platform/logging"
	appmiddleware "github.com/janisto/hello-service/internal/platform/middleware"
	"github.com/janisto/hello-service/internal/platform/respond"
	hellosvc "github.com/janisto/hello-service/internal/service/hello"
)

func newTestAPI(svc hellosvc.Service) (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	cfg := huma.DefaultConfig("HelloTest", "test")
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)
	Register(api, svc)
	return router, api
}

func newTestRouter() chi.Router {
	router, _ := newTestAPI(hellosvc.NewService())
	return router
}

func get(t *testing.T, router http.Handler, path, accept string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "hello-test")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGetString(t *testing.T) {
	resp := get(t, newTestRouter(), "/hello/string", "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("expected text/plain, got %s", ct)
	}
	if body := resp.Body.String(); body != "Hello string!" {
		t.Errorf("expected 'Hello string!', got %q", body)
	}
}

func TestGetService(t *testing.T) {
	svc := hellosvc.NewService()
	router, _ := newTestAPI(svc)

	resp := get(t, router, "/hello/service", "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("expected text/plain, got %s", ct)
	}
	body := resp.Body.String()
	if body != "Hello service!" {
		t.Errorf("expected 'Hello service!', got %q", body)
	}
	if want := svc.GetHello(t.Context()); body != want {
		t.Errorf("expected body to equal service value %q, got %q", want, body)
	}
}

func TestGetServiceDelegatesToInjectedService(t *testing.T) {
	mock := hellosvc.NewMockService("Hello from mock!")
	router, _ := newTestAPI(mock)

	resp := get(t, router, "/hello/service", "")

	if body := resp.Body.String(); body != "Hello from mock!" {
		t.Fatalf("expected mock greeting, got %q", body)
	}
	if mock.Calls() != 1 {
		t.Fatalf("expected service to be called once, got %d", mock.Calls())
	}

	_ = get(t, router, "/hello/string", "")
	_ = get(t, router, "/hello/data", "")
	if mock.Calls() != 1 {
		t.Fatalf("other routes must not call the service, got %d calls", mock.Calls())
	}
}

func TestGetDataJSON(t *testing.T) {
	resp := get(t, newTestRouter(), "/hello/data", "")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if body := strings.TrimSpace(resp.Body.String()); body != `{"text":"Hello data!"}` {
		t.Errorf(`expected {"text":"Hello data!"}, got %s`, body)
	}

	var msg Message
	if err := json.Unmarshal(resp.Body.Bytes(), &msg); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if msg != NewMessage("Hello data!") {
		t.Errorf("expected Message{Hello data!}, got %+v", msg)
	}
}

func TestGetDataCBOR(t *testing.T) {
	resp := get(t, newTestRouter(), "/hello/data", "application/cbor")

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Errorf("expected application/cbor, got %s", ct)
	}

	var msg Message
	if err := cbor.Unmarshal(resp.Body.Bytes(), &msg); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if msg.Text != DataGreeting {
		t.Errorf("expected %q, got %q", DataGreeting, msg.Text)
	}
}

func TestTextRoutesIgnoreAccept(t *testing.T) {
	router := newTestRouter()

	for _, accept := range []string{"application/cbor", "application/json", "*/*"} {
		resp := get(t, router, "/hello/string", accept)
		if ct := resp.Header().Get("Content-Type"); ct != "text/plain" {
			t.Errorf("Accept %q: expected text/plain, got %s", accept, ct)
		}
		if resp.Body.String() != StringGreeting {
			t.Errorf("Accept %q: unexpected body %q", accept, resp.Body.String())
		}
	}
}

func TestRepeatedRequestsAreIdentical(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/hello/string", "/hello/service", "/hello/data"} {
		first := get(t, router, path, "")
		for i := range 5 {
			again := get(t, router, path, "")
			if again.Code != first.Code || again.Body.String() != first.Body.String() {
				t.Fatalf("%s request %d differs: %d %q vs %d %q",
					path, i, again.Code, again.Body.String(), first.Code, first.Body.String())
			}
		}
	}
}

func TestConcurrentRequests(t *testing.T) {
	router := newTestRouter()
	want := map[string]string{
		"/hello/string":  "Hello string!",
		"/hello/service": "Hello service!",
		"/hello/data":    `{"text":"Hello data!"}`,
	}

	var wg sync.WaitGroup
	errs := make(chan error, 3*20)
	for range 20 {
		for path, body := range want {
			wg.Go(func() {
				req := httptest.NewRequest(http.MethodGet, path, nil)
				resp := httptest.NewRecorder()
				router.ServeHTTP(resp, req)
				if resp.Code != http.StatusOK {
					errs <- fmt.Errorf("%s: status %d", path, resp.Code)
					return
				}
				if got := strings.TrimSpace(resp.Body.String()); got != body {
					errs <- fmt.Errorf("%s: body %q, want %q", path, got, body)
				}
			})
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestNonGetMethodsNotAllowed(t *testing.T) {
	router := newTestRouter()

	for _, method := range []string{http.MethodPost, http.MethodHead, http.MethodPut, http.MethodDelete} {
		for _, path := range []string{"/hello/string", "/hello/service", "/hello/data"} {
			req := httptest.NewRequest(method, path, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusMethodNotAllowed {
				t.Fatalf("%s %s: expected 405, got %d", method, path, resp.Code)
			}
			if allow := resp.Header().Get("Allow"); allow != http.MethodGet {
				t.Fatalf("%s %s: expected Allow: GET, got %q", method, path, allow)
			}
		}
	}
}

func TestUnknownHelloRouteNotFound(t *testing.T) {
	resp := get(t, newTestRouter(), "/hello/unknown", "")

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("expected application/problem+json, got %s", ct)
	}
}

func TestMessageEquality(t *testing.T) {
	if NewMessage("Hello data!") != NewMessage("Hello data!") {
		t.Fatal("messages with the same text must be equal")
	}
	if NewMessage("Hello data!") == NewMessage("Hello, data!") {
		t.Fatal("messages with different text must not be equal")
	}

	set := map[Message]int{}
	set[NewMessage("a")]++
	set[NewMessage("a")]++
	set[NewMessage("b")]++
	if len(set) != 2 || set[NewMessage("a")] != 2 {
		t.Fatalf("expected value-based hashing, got %v", set)
	}
}

func TestOpenAPIDescribesRoutes(t *testing.T) {
	_, api := newTestAPI(hellosvc.NewService())
	paths := api.OpenAPI().Paths

	for _, tc := range []struct {
		path, operationID, contentType string
	}{
		{"/hello/string", "get-hello-string", "text/plain"},
		{"/hello/service", "get-hello-service", "text/plain"},
		{"/hello/data", "get-hello-data", "application/json"},
	} {
		item, ok := paths[tc.path]
		if !ok || item.Get == nil {
			t.Fatalf("missing GET operation for %s", tc.path)
		}
		if item.Get.OperationID != tc.operationID {
			t.Errorf("%s: expected operation %s, got %s", tc.path, tc.operationID, item.Get.OperationID)
		}
		resp, ok := item.Get.Responses["200"]
		if !ok || resp.Content[tc.contentType] == nil {
			t.Errorf("%s: expected 200 response with %s content", tc.path, tc.contentType)
		}
	}
}
