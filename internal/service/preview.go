package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxTitleLen = 120

// PreviewService fetches the page title of a task link so the
// administrator can sanity-check what was just added. Strictly
// best-effort: the link target is an arbitrary third-party site.
type PreviewService struct {
	httpClient *http.Client
}

func NewPreviewService(timeout time.Duration) *PreviewService {
	return &PreviewService{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *PreviewService) PageTitle(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch link: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch link: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return "", fmt.Errorf("page has no title")
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen]
	}
	return title, nil
}
