// Package link turns snippet content into something a browser can open.
package link

import (
	"fmt"
	"strings"

	"github.com/pkg/browser"
)

// Normalize prepends https:// unless content already names http or https.
func Normalize(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://") {
		return content
	}
	return "https://" + content
}

// Likely reports whether content looks like a link worth offering to open:
// it contains a dot, no spaces, and is longer than three characters.
func Likely(content string) bool {
	content = strings.TrimSpace(content)
	return len(content) > 3 && strings.Contains(content, ".") && !strings.ContainsAny(content, " \t\n")
}

// Opener opens a URL for the user.
type Opener interface {
	Open(url string) error
}

// Browser opens URLs in the default browser.
type Browser struct{}

func (Browser) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("link: open %s: %w", url, err)
	}
	return nil
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error {
	return f(url)
}
