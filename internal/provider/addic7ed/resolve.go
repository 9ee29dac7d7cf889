package addic7ed

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/subscout/subscout/internal/cache"
	"github.com/subscout/subscout/internal/match"
)

// showIndex returns the series-name to show-id index, from the cache when a
// fresh copy exists, otherwise rebuilt from the shows page.
func (p *Provider) showIndex(ctx context.Context) (cache.ShowIndex, error) {
	if p.store != nil {
		index, ok, err := p.store.GetShowIndex(ProviderName)
		if err != nil {
			p.log.Warn("Show index cache read failed", "error", err)
		} else if ok {
			return index, nil
		}
	}

	doc, err := p.get(ctx, "/shows.php", nil)
	if err != nil {
		return nil, err
	}
	index := parseShowList(doc)
	p.log.Info("Show index rebuilt", "entries", len(index))

	if p.store != nil {
		if err := p.store.PutShowIndex(ProviderName, index); err != nil {
			p.log.Warn("Show index cache write failed", "error", err)
		}
	}
	return index, nil
}

// findShowID performs a live remote search for a show name and returns the
// first suggestion. Returns 0 when the catalog has no suggestion.
func (p *Provider) findShowID(ctx context.Context, name string) (int, error) {
	params := url.Values{}
	params.Set("search", name)
	params.Set("Submit", "Search")

	doc, err := p.get(ctx, "/search.php", params)
	if err != nil {
		return 0, err
	}
	ids := parseShowSearch(doc)
	if len(ids) == 0 {
		p.log.Debug("Series not found on remote search", "name", name)
		return 0, nil
	}
	p.log.Debug("Remote search suggestions", "name", name, "count", len(ids))
	return ids[0], nil
}

// resolution is the outcome of the cascading show-id lookup.
type resolution struct {
	showID   int
	name     string // the form that resolved
	withYear bool   // resolved through the year-qualified round
}

// resolveShowID maps a free-text series name to a show id, in strict order,
// stopping at the first success:
//
//  1. year-qualified form "<series> (<year>)", when a year is known;
//  2. the plain lower-cased name;
//  3. the name with a trailing parenthesized qualifier such as "(US)"
//     removed, when one is present.
//
// Each round checks the cached index (raw form, then condensed form) before
// falling back to a live remote search (raw, then condensed). Catalogs index
// shows inconsistently; a single direct lookup has a materially lower hit
// rate than this cascade.
func (p *Provider) resolveShowID(ctx context.Context, index cache.ShowIndex, series string, year int) resolution {
	lower := strings.ToLower(series)

	if year > 0 {
		qualified := lower + fmt.Sprintf(" (%d)", year)
		if id := p.lookupShow(ctx, index, qualified); id != 0 {
			return resolution{showID: id, name: qualified, withYear: true}
		}
	}

	if id := p.lookupShow(ctx, index, lower); id != 0 {
		return resolution{showID: id, name: lower}
	}

	stripped := strings.ToLower(match.StripParenthetical(series))
	if stripped == lower {
		// No qualifier to strip; give up.
		return resolution{}
	}
	if id := p.lookupShow(ctx, index, stripped); id != 0 {
		return resolution{showID: id, name: stripped}
	}
	return resolution{}
}

// lookupShow tries one name form: cached index first (raw then condensed),
// then the live remote search (raw then condensed). A failed remote lookup
// is treated as not found; the cascade proceeds.
func (p *Provider) lookupShow(ctx context.Context, index cache.ShowIndex, name string) int {
	condensed := match.CondenseSeries(name)
	p.log.Debug("Looking up series", "raw", name, "condensed", condensed)

	if id, ok := index[name]; ok {
		return id
	}
	if id, ok := index[condensed]; ok {
		return id
	}

	id, err := p.searchShow(ctx, name)
	if err != nil {
		p.log.Warn("Remote show search failed", "name", name, "error", err)
	} else if id != 0 {
		return id
	}

	if condensed != name {
		id, err = p.searchShow(ctx, condensed)
		if err != nil {
			p.log.Warn("Remote show search failed", "name", condensed, "error", err)
		} else if id != 0 {
			return id
		}
	}
	return 0
}
