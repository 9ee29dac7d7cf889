package addic7ed

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/subscout/subscout/internal/cache"
	"github.com/subscout/subscout/internal/match"
)

const showHrefPrefix = "/show/"

// findAll walks the document and collects nodes matching pred, in document
// order.
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && pred(node) {
			out = append(out, node)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// nodeText returns the concatenated text content of a node, trimmed.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func isShowAnchor(n *html.Node) bool {
	return n.Data == "a" && strings.HasPrefix(attr(n, "href"), showHrefPrefix)
}

func showIDFromHref(href string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(href, showHrefPrefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseShowList builds the series-name index from the shows page. Each show
// is indexed under its raw lower-cased name and its condensed form.
func parseShowList(doc *html.Node) cache.ShowIndex {
	index := make(cache.ShowIndex)
	for _, a := range findAll(doc, isShowAnchor) {
		id, ok := showIDFromHref(attr(a, "href"))
		if !ok {
			continue
		}
		name := nodeText(a)
		if name == "" {
			continue
		}
		index[strings.ToLower(name)] = id
		index[match.CondenseSeries(name)] = id
	}
	return index
}

// parseShowSearch extracts the suggested show ids from a search results
// page, in page order. The first suggestion is authoritative.
func parseShowSearch(doc *html.Node) []int {
	var ids []int
	for _, a := range findAll(doc, isShowAnchor) {
		if id, ok := showIDFromHref(attr(a, "href")); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// episodeRow is one parsed row of a season's episode listing.
type episodeRow struct {
	season          int
	episode         int
	title           string
	pageLink        string
	language        string
	version         string
	status          string
	hearingImpaired bool
	corrected       bool
	hd              bool
	downloadLink    string
}

// parseEpisodeRows extracts the subtitle rows of a season listing. Rows with
// an incomplete status, an empty language cell, or unparseable season or
// episode numbers are dropped here, before any matching happens.
func parseEpisodeRows(doc *html.Node) []episodeRow {
	var rows []episodeRow
	trs := findAll(doc, func(n *html.Node) bool {
		return n.Data == "tr" && hasClass(n, "completed")
	})
	for _, tr := range trs {
		var cells []*html.Node
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "td" {
				cells = append(cells, c)
			}
		}
		if len(cells) < 10 {
			continue
		}
		if nodeText(cells[5]) != "Completed" {
			continue
		}
		lang := nodeText(cells[3])
		if lang == "" {
			// Language is a mandatory filter; no candidate without it.
			continue
		}
		season, err := strconv.Atoi(nodeText(cells[0]))
		if err != nil {
			continue
		}
		episode, err := strconv.Atoi(nodeText(cells[1]))
		if err != nil {
			continue
		}

		row := episodeRow{
			season:   season,
			episode:  episode,
			title:    nodeText(cells[2]),
			language: lang,
			version:  nodeText(cells[4]),
			status:   nodeText(cells[5]),
			// Presence flags: any cell content means true.
			hearingImpaired: nodeText(cells[6]) != "",
			corrected:       nodeText(cells[7]) != "",
			hd:              nodeText(cells[8]) != "",
		}
		if a := firstAnchor(cells[2]); a != nil {
			row.pageLink = attr(a, "href")
		}
		if a := firstAnchor(cells[9]); a != nil {
			row.downloadLink = attr(a, "href")
		}
		rows = append(rows, row)
	}
	return rows
}

func firstAnchor(n *html.Node) *html.Node {
	anchors := findAll(n, func(node *html.Node) bool { return node.Data == "a" })
	if len(anchors) == 0 {
		return nil
	}
	return anchors[0]
}
