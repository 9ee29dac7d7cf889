package opensubtitles

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/subscout/subscout/internal/provider"
)

const (
	baseURL   = "https://rest.opensubtitles.org/search"
	userAgent = "subscout v1.0"
)

// doSearch issues the HTTP search request for one criteria set and decodes
// the result rows.
func (p *Provider) doSearch(req *http.Request) ([]SearchResult, error) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return results, nil
}

// checkStatus maps catalog HTTP statuses onto the provider error taxonomy.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return provider.NewError(ProviderName, provider.KindUnauthorized, resp.Status)
	case http.StatusNotAcceptable:
		return provider.NewError(ProviderName, provider.KindNoSession, resp.Status)
	case http.StatusProxyAuthRequired:
		return provider.NewError(ProviderName, provider.KindDownloadLimitReached, resp.Status)
	case http.StatusRequestEntityTooLarge:
		return provider.NewError(ProviderName, provider.KindInvalidIMDBID, resp.Status)
	case http.StatusRequestURITooLong:
		return provider.NewError(ProviderName, provider.KindUnknownUserAgent, resp.Status)
	case http.StatusUnsupportedMediaType:
		return provider.NewError(ProviderName, provider.KindDisabledUserAgent, resp.Status)
	case http.StatusServiceUnavailable:
		return provider.NewError(ProviderName, provider.KindServiceUnavailable, resp.Status)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return provider.NewError(ProviderName, provider.KindGeneric,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
}

// searchURL builds the request URL for a criteria set.
func searchURL(c Criteria) string {
	segs := c.segments()
	for i, s := range segs {
		// Values inside a segment need escaping; the "field-" prefix is safe.
		if j := strings.Index(s, "-"); j >= 0 {
			segs[i] = s[:j+1] + url.PathEscape(s[j+1:])
		}
	}
	return baseURL + "/" + strings.Join(segs, "/")
}
