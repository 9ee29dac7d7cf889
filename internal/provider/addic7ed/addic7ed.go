// Package addic7ed implements the addic7ed.com catalog: an HTML-scraping
// provider that resolves a series name to a show id through a cascading
// fallback chain, then browses a season's episode listing for candidates.
package addic7ed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/subscout/subscout/internal/cache"
	"github.com/subscout/subscout/internal/provider"
	"github.com/subscout/subscout/internal/subtitle"
	"github.com/subscout/subscout/internal/video"
)

const (
	// ProviderName keys hashes, logs and cache entries for this catalog.
	ProviderName = "addic7ed"

	defaultServer      = "https://www.addic7ed.com"
	defaultHTTPTimeout = 10 * time.Second
	userAgent          = "subscout v1.0"
)

// Provider scrapes addic7ed.com. The zero credentials pair browses
// anonymously; supplying only one of username/password is a configuration
// error.
type Provider struct {
	server     string
	username   string
	password   string
	httpClient *http.Client
	store      *cache.Store
	log        *slog.Logger

	loggedIn bool

	// searchShow performs the live remote show search; replaced in tests.
	searchShow func(ctx context.Context, name string) (int, error)
}

// NewProvider creates an addic7ed provider. store may be nil, in which case
// the show index is rebuilt on every query.
func NewProvider(username, password string, store *cache.Store) (*Provider, error) {
	if (username == "") != (password == "") {
		return nil, provider.NewError(ProviderName, provider.KindConfiguration,
			"both username and password must be specified, or neither")
	}
	p := &Provider{
		server:   defaultServer,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
			// Login success is signalled by a redirect; don't follow it.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		store: store,
		log:   slog.With("provider", ProviderName),
	}
	p.searchShow = p.findShowID
	return p, nil
}

// Name returns the catalog name.
func (p *Provider) Name() string {
	return ProviderName
}

// Initialize logs in when credentials are configured.
func (p *Provider) Initialize(ctx context.Context) error {
	if p.username == "" {
		return nil
	}

	form := url.Values{}
	form.Set("username", p.username)
	form.Set("password", p.password)
	form.Set("Submit", "Log in")

	req, err := http.NewRequestWithContext(ctx, "POST", p.server+"/dologin.php",
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return provider.NewError(ProviderName, provider.KindUnauthorized, p.username)
	}
	p.loggedIn = true
	p.log.Info("Logged in", "username", p.username)
	return nil
}

// Terminate logs out when a session was established.
func (p *Provider) Terminate(ctx context.Context) error {
	if !p.loggedIn {
		return nil
	}
	p.loggedIn = false

	req, err := http.NewRequestWithContext(ctx, "GET", p.server+"/logout.php", nil)
	if err != nil {
		return fmt.Errorf("failed to create logout request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return provider.NewError(ProviderName, provider.KindGeneric,
			fmt.Sprintf("logout returned status %d", resp.StatusCode))
	}
	p.log.Info("Logged out")
	return nil
}

// ListSubtitles returns candidates for an episode video. The catalog indexes
// episodes only; any other kind yields no candidates.
func (p *Provider) ListSubtitles(ctx context.Context, v *video.Video, languages []subtitle.Language) ([]subtitle.Candidate, error) {
	if v.Kind != video.KindEpisode {
		p.log.Debug("Video kind not supported", "kind", v.Kind.String())
		return nil, nil
	}
	return p.query(ctx, languages, v.Series, v.Season, v.Episode, v.Year)
}

// get fetches a catalog page and parses it as an HTML document.
func (p *Provider) get(ctx context.Context, path string, params url.Values) (*html.Node, error) {
	endpoint := p.server + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, provider.NewError(ProviderName, provider.KindGeneric,
			fmt.Sprintf("request for %s returned status %d", path, resp.StatusCode))
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}
