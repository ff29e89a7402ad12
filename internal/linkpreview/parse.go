package linkpreview

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// maxFallbackImages caps how many <img> tags are collected when the page
// declares no preview image.
const maxFallbackImages = 10

// Metadata is the preview information extracted for one URL.
type Metadata struct {
	URL         string   // final URL after redirects
	ContentType string   // media type of the response, without parameters
	Title       string
	Description string
	SiteName    string
	Images      []string // absolute URLs, most relevant first, no duplicates
}

var (
	selMeta     = cascadia.MustCompile("meta[content]")
	selTitle    = cascadia.MustCompile("title")
	selBase     = cascadia.MustCompile("base[href]")
	selImageSrc = cascadia.MustCompile(`link[rel~="image_src"][href]`)
	selImg      = cascadia.MustCompile("img[src]")
)

// imageKeys lists the meta keys that declare a preview image, by priority.
var imageKeys = []string{
	"og:image",
	"og:image:url",
	"og:image:secure_url",
	"twitter:image",
	"twitter:image:src",
}

// Parse reads an HTML document and extracts its preview metadata.
// pageURL is used to resolve relative image references and may be nil.
func Parse(r io.Reader, pageURL *url.URL) (*Metadata, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableContent, err)
	}

	meta := collectMeta(doc)

	md := &Metadata{
		Title:       firstNonEmpty(meta.get("og:title"), meta.get("twitter:title"), textOf(selTitle.MatchFirst(doc))),
		Description: firstNonEmpty(meta.get("og:description"), meta.get("twitter:description"), meta.get("description")),
		SiteName:    meta.get("og:site_name"),
	}
	if pageURL != nil {
		md.URL = pageURL.String()
	}

	images := newURLSet(resolveBase(doc, pageURL))
	for _, key := range imageKeys {
		for _, v := range meta[key] {
			images.add(v)
		}
	}
	for _, n := range selImageSrc.MatchAll(doc) {
		images.add(attr(n, "href"))
	}
	if images.len() == 0 {
		for _, n := range selImg.MatchAll(doc) {
			if images.len() >= maxFallbackImages {
				break
			}
			images.add(attr(n, "src"))
		}
	}
	md.Images = images.list()

	return md, nil
}

// metaValues maps lowercased meta property/name keys to their content
// values in document order.
type metaValues map[string][]string

// get returns the first non-empty value for key.
func (m metaValues) get(key string) string {
	for _, v := range m[key] {
		if v != "" {
			return v
		}
	}
	return ""
}

func collectMeta(doc *html.Node) metaValues {
	values := metaValues{}
	for _, n := range selMeta.MatchAll(doc) {
		key := attr(n, "property")
		if key == "" {
			key = attr(n, "name")
		}
		if key == "" {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		values[key] = append(values[key], strings.TrimSpace(attr(n, "content")))
	}
	return values
}

// resolveBase returns the URL relative references are resolved against:
// <base href> when present (itself resolved against pageURL), else pageURL.
func resolveBase(doc *html.Node, pageURL *url.URL) *url.URL {
	n := selBase.MatchFirst(doc)
	if n == nil {
		return pageURL
	}
	href, err := url.Parse(strings.TrimSpace(attr(n, "href")))
	if err != nil {
		return pageURL
	}
	if pageURL == nil {
		return href
	}
	return pageURL.ResolveReference(href)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// textOf returns the trimmed text content of n, or "" for nil.
func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// urlSet collects absolute URLs in insertion order without duplicates.
type urlSet struct {
	base  *url.URL
	seen  map[string]struct{}
	items []string
}

func newURLSet(base *url.URL) *urlSet {
	return &urlSet{base: base, seen: map[string]struct{}{}}
}

// add resolves raw against the base and keeps it if it is a usable
// http(s) or protocol-relative reference. data: URIs are skipped.
func (s *urlSet) add(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(strings.ToLower(raw), "data:") {
		return
	}
	u, err := url.Parse(raw)
	if err != nil {
		return
	}
	if s.base != nil {
		u = s.base.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return
	}
	abs := u.String()
	if _, dup := s.seen[abs]; dup {
		return
	}
	s.seen[abs] = struct{}{}
	s.items = append(s.items, abs)
}

func (s *urlSet) len() int { return len(s.items) }

func (s *urlSet) list() []string {
	if len(s.items) == 0 {
		return nil
	}
	return s.items
}
