// Package extractor pulls anchor hrefs out of HTML documents.
package extractor

import (
	"bytes"

	"golang.org/x/net/html"
)

// HTML extracts href attributes from anchor tags using the x/net tokenizer.
// It implements crawler.Extractor.
type HTML struct{}

// NewHTML returns the tokenizer-backed extractor.
func NewHTML() *HTML {
	return &HTML{}
}

// Links returns every href attribute value of every <a> element in document
// order, exactly as written in the markup. Malformed HTML is tolerated: the
// tokenizer yields whatever anchors it can find before giving up, and a
// body that cannot be tokenized at all simply yields no links.
func (e *HTML) Links(body []byte) []string {
	var links []string
	z := html.NewTokenizer(bytes.NewReader(body))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; either way we are done.
			return links
		case html.StartTagToken, html.SelfClosingTagToken:
			token := z.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
					break
				}
			}
		}
	}
}
