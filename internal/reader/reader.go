// Package reader fetches a linked document and distills it into readable
// plain text.
//
// The pipeline is a three-tier fallback chain: structured readability
// extraction, raw-markup conversion when extraction fails, and a transport
// error surfaced to the caller when nothing could be fetched at all.
package reader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/jaytaylor/html2text"
	"github.com/muesli/reflow/wordwrap"
)

// columnWidth is the fixed wrap width for article text.
const columnWidth = 100

// minBodyChars is the threshold below which extracted text is treated as
// effectively empty.
const minBodyChars = 50

// Some servers reject unidentified clients, so article requests carry a
// desktop browser User-Agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fixed advisories shown in place of (or alongside) article text.
const (
	MediaAdvisory         = "Media file. Press 'o' to open it in your browser."
	EmptyAdvisory         = "Empty content. Press 'o' to open in your browser."
	ExtractFailedAdvisory = "Extraction failed. Showing raw text:"
)

// extractFunc isolates the readability step so each fallback tier can be
// tested independently.
type extractFunc func(input io.Reader, pageURL *url.URL) (readability.Article, error)

// Reader loads article documents over HTTP and produces displayable text.
type Reader struct {
	client  *http.Client
	extract extractFunc
}

// New creates a Reader using the default HTTP transport. Article fetches
// have no explicit timeout beyond the transport defaults.
func New() *Reader {
	return &Reader{
		client:  &http.Client{},
		extract: readability.FromReader,
	}
}

// Load fetches rawURL and returns a displayable text block.
//
// Binary/media content types short-circuit with a fixed advisory. Otherwise
// the body is run through the readability extractor against the final
// (post-redirect) URL; on success the title becomes a heading and the
// content is converted to plain text wrapped at 100 columns, on failure the
// entire raw markup is converted instead, prefixed with an advisory. Only
// transport-level failures are returned as errors.
func (r *Reader) Load(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch document: %w", err)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/pdf") || strings.Contains(contentType, "image/") {
		return MediaAdvisory, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	// resp.Request.URL reflects any redirects the transport followed.
	article, err := r.extract(bytes.NewReader(body), resp.Request.URL)
	if err != nil {
		return ExtractFailedAdvisory + "\n\n" + toPlainText(string(body)), nil
	}

	heading := "# " + article.Title + "\n\n"
	text := toPlainText(article.Content)
	if len(strings.TrimSpace(text)) < minBodyChars {
		return heading + EmptyAdvisory, nil
	}
	return heading + text, nil
}

// toPlainText converts markup to plain text wrapped at the fixed column
// width. Conversion errors fall back to the input unconverted.
func toPlainText(markup string) string {
	text, err := html2text.FromString(markup)
	if err != nil {
		text = markup
	}
	return wordwrap.String(text, columnWidth)
}
