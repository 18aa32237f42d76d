// Package remote looks up passages from bible-api.com, which serves
// public-domain translations without an API key. It is independent of
// the local corpus: results are display-only and never indexed.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"versicle/internal/canon"
)

const baseURL = "https://bible-api.com"

// Translation pairs a bible-api.com translation code with its display
// label.
type Translation struct {
	Code  string
	Label string
}

// Translations lists every translation the picker offers, first entry
// is the default.
var Translations = []Translation{
	{"web", "World English"},
	{"kjv", "King James"},
	{"asv", "American Std"},
	{"bbe", "Basic English"},
	{"darby", "Darby Bible"},
	{"dra", "Douay-Rheims"},
	{"ylt", "Young's Literal"},
	{"webbe", "WEB British"},
	{"oeb-us", "Open English US"},
}

// TranslationIndex returns the position of code in Translations, or -1
// if the code is unknown.
func TranslationIndex(code string) int {
	for i, t := range Translations {
		if t.Code == code {
			return i
		}
	}
	return -1
}

// Passage is one looked-up reference with its full text.
type Passage struct {
	Reference   string `json:"reference"`
	Text        string `json:"text"`
	Translation string `json:"translation_id"`
}

type apiResponse struct {
	Passage
	Error string `json:"error"`
}

// Client fetches passages over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// Lookup fetches a free-form reference such as "John 3:16" in the
// given translation.
func (c *Client) Lookup(ctx context.Context, ref, translation string) (*Passage, error) {
	u := fmt.Sprintf("%s/%s?translation=%s",
		c.baseURL, url.PathEscape(ref), url.QueryEscape(translation))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", ref, err)
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("lookup %q: decode: %w", ref, err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("lookup %q: %s", ref, body.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lookup %q: status %d", ref, resp.StatusCode)
	}

	body.Text = strings.TrimSpace(strings.ReplaceAll(body.Text, "\n", " "))
	if body.Reference == "" || body.Text == "" {
		return nil, fmt.Errorf("lookup %q: empty response", ref)
	}
	return &body.Passage, nil
}

// LookupVerse clamps a book/chapter/verse picker triple to a real
// reference and fetches it. Book is 0-based.
func (c *Client) LookupVerse(ctx context.Context, book, chapter, verse int, translation string) (*Passage, error) {
	book, chapter, verse = canon.Clamp(book, chapter, verse)
	ref := fmt.Sprintf("%s %d:%d", canon.BookName(book), chapter, verse)
	return c.Lookup(ctx, ref, translation)
}
