package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightpixel/studio-api/internal/entity"
	"github.com/brightpixel/studio-api/pkg/config"
)

func newTestConfig() config.GitHub {
	return config.GitHub{
		Token:        "gh-token",
		Repo:         "brightpixel/contracts",
		Branch:       "main",
		ContractsDir: "contracts",
	}
}

func TestClient_PutFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		serverResponse  func(w http.ResponseWriter, r *http.Request)
		wantErr         bool
		wantDownloadURL string
		wantSHA         string
	}{
		{
			name: "created with echoed content block",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPut {
					t.Errorf("method = %s, want PUT", r.Method)
				}
				if got := r.URL.Path; got != "/repos/brightpixel/contracts/contents/contracts/c-1.pdf" {
					t.Errorf("path = %q", got)
				}
				if got := r.Header.Get("Authorization"); got != "Bearer gh-token" {
					t.Errorf("Authorization = %q", got)
				}
				if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
					t.Errorf("Accept = %q", got)
				}

				var req struct {
					Message string `json:"message"`
					Content string `json:"content"`
					Branch  string `json:"branch"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("decode request: %v", err)
				}
				if req.Branch != "main" {
					t.Errorf("branch = %q", req.Branch)
				}
				if req.Content != "aGVsbG8=" {
					t.Errorf("content = %q", req.Content)
				}
				if !strings.Contains(req.Message, "c-1") {
					t.Errorf("commit message %q does not name the file", req.Message)
				}

				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"content":{
					"sha":"abc123",
					"download_url":"https://raw.githubusercontent.com/brightpixel/contracts/main/contracts/c-1.pdf?token=x"
				}}`))
			},
			wantDownloadURL: "https://raw.githubusercontent.com/brightpixel/contracts/main/contracts/c-1.pdf?token=x",
			wantSHA:         "abc123",
		},
		{
			name: "updated without content block falls back to raw url",
			serverResponse: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"commit":{"sha":"def456"}}`))
			},
			wantDownloadURL: "https://raw.githubusercontent.com/brightpixel/contracts/main/contracts/c-1.pdf",
		},
		{
			name: "unauthorized",
			serverResponse: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
			},
			wantErr: true,
		},
		{
			name: "conflict on existing path",
			serverResponse: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(`{"message":"sha wasn't supplied"}`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			client := NewClientWithBaseURL(newTestConfig(), server.URL)

			result, err := client.PutFile(context.Background(), "contracts/c-1.pdf", "aGVsbG8=", "Add contract c-1 (c-1)")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("PutFile() error: %v", err)
			}

			if result.DownloadURL != tt.wantDownloadURL {
				t.Errorf("DownloadURL = %q, want %q", result.DownloadURL, tt.wantDownloadURL)
			}

			if result.SHA != tt.wantSHA {
				t.Errorf("SHA = %q, want %q", result.SHA, tt.wantSHA)
			}
		})
	}
}

func TestClient_PutFile_NotConfigured(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	cfg.Token = ""
	client := NewClient(cfg)

	_, err := client.PutFile(context.Background(), "contracts/x.pdf", "aGVsbG8=", "Add contract file x.pdf")
	if !errors.Is(err, entity.ErrNotConfigured) {
		t.Errorf("error = %v, want ErrNotConfigured", err)
	}
}
