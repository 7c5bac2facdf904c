package ingestion

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/candidate-matcher/internal/fetch"
	"go.uber.org/zap"
)

var (
	// ErrHTTPRequestFailed wraps failures fetching the page.
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed wraps failures reducing the page to text.
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// URLOptions controls IngestFromURL. Render is used only when UseBrowser is
// set and plain HTTP yields too little text; nil means headless Chrome.
type URLOptions struct {
	UseBrowser bool
	Fetch      *fetch.Options
	Render     fetch.Renderer
	Logger     *zap.Logger
}

// IngestFromURL fetches a job posting, extracts its description with
// board-specific selectors and returns the cleaned text with metadata.
func IngestFromURL(ctx context.Context, urlStr string, opts *URLOptions) (string, *Metadata, error) {
	if opts == nil {
		opts = &URLOptions{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	platform := fetch.DetectPlatform(urlStr)
	log.Debug("fetching job posting", zap.String("url", urlStr), zap.String("platform", string(platform)))

	result, err := fetch.URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if result.Truncated {
		log.Warn("job posting body truncated", zap.String("url", urlStr), zap.Int("bytes", len(result.HTML)))
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	html := result.HTML
	text, err := fetch.ExtractMainText(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	log.Debug("extracted job text", zap.Int("chars", len(text)))

	rendered := false
	if opts.UseBrowser && fetch.ShouldUseBrowser(text) {
		render := opts.Render
		if render == nil {
			render = fetch.NewBrowserRenderer(fetch.DefaultBrowserTimeout, log)
		}
		log.Info("content too short, rendering in browser",
			zap.Int("chars", len(text)),
			zap.Int("min_chars", fetch.MinContentLength),
		)
		// Browser failures fall back to the HTTP content.
		if browserHTML, renderErr := render(ctx, urlStr); renderErr != nil {
			log.Warn("browser rendering failed, using HTTP content", zap.Error(renderErr))
		} else if browserText, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr != nil {
			log.Warn("browser content extraction failed", zap.Error(extractErr))
		} else {
			html, text, rendered = browserHTML, browserText, true
		}
	}

	cleaned := CleanText(text)
	meta := NewMetadata(cleaned, urlStr)
	meta.Platform = string(platform)
	meta.MediaType = MediaTypeHTML
	meta.Title = fetch.ExtractTitle(html)
	meta.Rendered = rendered
	meta.Bytes = len(html)

	return cleaned, meta, nil
}
