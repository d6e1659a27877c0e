package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lagowski/go-openprovider/pkg/apierror"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.URL != DefaultURL {
		t.Errorf("URL = %q, want %q", config.URL, DefaultURL)
	}
	if config.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", config.UserAgent, DefaultUserAgent)
	}
	if config.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", config.Timeout)
	}
	if config.IdleConnTimeout != 90*time.Second {
		t.Errorf("IdleConnTimeout = %v, want 90s", config.IdleConnTimeout)
	}
}

func TestNew_NilConfig(t *testing.T) {
	tr := New(nil)

	if tr == nil {
		t.Fatal("New(nil) returned nil")
	}
	if tr.URL() != DefaultURL {
		t.Errorf("URL() = %q, want %q", tr.URL(), DefaultURL)
	}
}

func TestNew_PartialConfig(t *testing.T) {
	tr := New(&Config{URL: "https://api.example.test"})

	if tr.URL() != "https://api.example.test" {
		t.Errorf("URL() = %q, want configured endpoint", tr.URL())
	}
	if tr.config.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default fill-in", tr.config.UserAgent)
	}
	if tr.config.Timeout == 0 {
		t.Error("Timeout not filled in")
	}
}

func TestTransport_Post(t *testing.T) {
	handler := &mockAPIHandler{
		status:   http.StatusOK,
		response: `<reply><code>0</code><desc></desc></reply>`,
	}
	server := httptest.NewServer(handler)
	defer server.Close()

	tr := New(&Config{URL: server.URL})

	resp, body, err := tr.Post(context.Background(), []byte(`<openXML></openXML>`))
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if string(body) != handler.response {
		t.Errorf("body = %q, want %q", body, handler.response)
	}

	if handler.gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", handler.gotMethod)
	}
	if got := handler.gotHeader.Get("Content-Type"); got != ContentType {
		t.Errorf("Content-Type = %q, want %q", got, ContentType)
	}
	if got := handler.gotHeader.Get("User-Agent"); got != DefaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", got, DefaultUserAgent)
	}
	if string(handler.gotBody) != `<openXML></openXML>` {
		t.Errorf("request body = %q", handler.gotBody)
	}
}

func TestTransport_Post_CustomUserAgent(t *testing.T) {
	handler := &mockAPIHandler{status: http.StatusOK, response: "ok"}
	server := httptest.NewServer(handler)
	defer server.Close()

	tr := New(&Config{URL: server.URL, UserAgent: "custom-agent/1.0"})

	if _, _, err := tr.Post(context.Background(), nil); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if got := handler.gotHeader.Get("User-Agent"); got != "custom-agent/1.0" {
		t.Errorf("User-Agent = %q, want custom value", got)
	}
}

func TestTransport_Post_ErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusBadGateway} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		tr := New(&Config{URL: server.URL})
		_, _, err := tr.Post(context.Background(), []byte("body"))
		server.Close()

		if err == nil {
			t.Fatalf("status %d: expected error", status)
		}
		if !errors.Is(err, apierror.ErrServiceUnavailable) {
			t.Errorf("status %d: error %v does not wrap ErrServiceUnavailable", status, err)
		}
	}
}

func TestTransport_Post_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	tr := New(&Config{URL: url})
	_, _, err := tr.Post(context.Background(), []byte("body"))

	if err == nil {
		t.Fatal("expected error for refused connection")
	}
	if !errors.Is(err, apierror.ErrServiceUnavailable) {
		t.Errorf("error %v does not wrap ErrServiceUnavailable", err)
	}
}

func TestTransport_Post_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	tr := New(&Config{URL: server.URL})
	_, _, err := tr.Post(ctx, []byte("body"))

	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !errors.Is(err, apierror.ErrServiceUnavailable) {
		t.Errorf("error %v does not wrap ErrServiceUnavailable", err)
	}
}

func TestTransport_Post_InjectedClient(t *testing.T) {
	handler := &mockAPIHandler{status: http.StatusOK, response: "ok"}
	server := httptest.NewServer(handler)
	defer server.Close()

	custom := &http.Client{Timeout: 5 * time.Second}
	tr := New(&Config{URL: server.URL, HTTPClient: custom})

	if tr.client != custom {
		t.Error("injected client not used")
	}
	if _, _, err := tr.Post(context.Background(), nil); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
}

// mockAPIHandler records the request it served and answers with a fixed
// status and body.
type mockAPIHandler struct {
	status   int
	response string

	gotMethod string
	gotHeader http.Header
	gotBody   []byte
}

func (h *mockAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.gotMethod = r.Method
	h.gotHeader = r.Header.Clone()
	h.gotBody, _ = io.ReadAll(r.Body)

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(h.status)
	if _, err := io.Copy(w, strings.NewReader(h.response)); err != nil {
		panic(err)
	}
}
