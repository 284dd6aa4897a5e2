package vision

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// word is one recognized token with its pixel bounding box. The origin is
// the top-left corner of the image and Y grows downward.
type word struct {
	text           string
	x0, y0, x1, y1 int
}

func (w word) height() float64 { return float64(w.y1 - w.y0) }
func (w word) midY() float64   { return float64(w.y0+w.y1) / 2 }

// parseHOCR extracts word boxes from Tesseract hOCR output. Words are
// carried in spans of class ocrx_word with the bounding box encoded in the
// title attribute.
func parseHOCR(r io.Reader) ([]word, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	var words []word
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			if w, ok := wordFromNode(n); ok {
				words = append(words, w)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return words, nil
}

func wordFromNode(n *html.Node) (word, bool) {
	text := strings.TrimSpace(nodeText(n))
	if text == "" {
		return word{}, false
	}
	x0, y0, x1, y1, ok := parseBBox(attr(n, "title"))
	if !ok {
		return word{}, false
	}
	return word{text: text, x0: x0, y0: y0, x1: x1, y1: y1}, true
}

// parseBBox pulls the bounding box out of an hOCR title attribute, e.g.
// "bbox 112 34 198 61; x_wconf 96".
func parseBBox(title string) (x0, y0, x1, y1 int, ok bool) {
	for _, field := range strings.Split(title, ";") {
		field = strings.TrimSpace(field)
		if !strings.HasPrefix(field, "bbox ") {
			continue
		}
		if _, err := fmt.Sscanf(field, "bbox %d %d %d %d", &x0, &y0, &x1, &y1); err != nil {
			return 0, 0, 0, 0, false
		}
		return x0, y0, x1, y1, true
	}
	return 0, 0, 0, 0, false
}

func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attr(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
