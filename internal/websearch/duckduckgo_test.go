package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const resultsPage = `<!DOCTYPE html>
<html><body>
<div class="result">
  <a class="result__a" href="/l1">Dune by Frank Herbert — Science Fiction classic</a>
</div>
<div class="result">
  <a class="result__a" href="/l2">Dune (novel) - Wikipedia</a>
</div>
<div class="result">
  <a class="result__a" href="/l3">Dune review: epic desert sci-fi</a>
</div>
<div class="result">
  <a class="result__a" href="/l4">Fourth result should be dropped</a>
</div>
</body></html>`

func TestSearchBookGenreExtractsResults(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, resultsPage)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	snippets, err := client.SearchBookGenre(context.Background(), "Dune")
	if err != nil {
		t.Fatalf("SearchBookGenre: %v", err)
	}
	if gotQuery != `book genre "Dune"` {
		t.Fatalf("unexpected query %q", gotQuery)
	}
	if len(snippets) != 3 {
		t.Fatalf("expected 3 snippets, got %d: %v", len(snippets), snippets)
	}
	if snippets[0] != "Dune by Frank Herbert — Science Fiction classic" {
		t.Fatalf("unexpected first snippet %q", snippets[0])
	}
}

func TestSearchBookGenreNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>no results</p></body></html>")
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	snippets, err := client.SearchBookGenre(context.Background(), "Obscure Title")
	if err != nil {
		t.Fatalf("SearchBookGenre: %v", err)
	}
	if len(snippets) != 0 {
		t.Fatalf("expected no snippets, got %v", snippets)
	}
}

func TestSearchBookGenreHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	if _, err := client.SearchBookGenre(context.Background(), "Dune"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSearchBookGenreEmptyTitle(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.SearchBookGenre(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty title")
	}
}
