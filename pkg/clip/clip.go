// Package clip writes snippet content to the system clipboard.
package clip

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	WriteText(text string) error
}

// System is the platform clipboard.
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clip: no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clip: write: %w", err)
	}
	return nil
}

// Recorder keeps copied text in memory.
type Recorder struct {
	Texts []string
	Err   error
}

func (r *Recorder) WriteText(text string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Texts = append(r.Texts, text)
	return nil
}

// Last returns the most recent copy.
func (r *Recorder) Last() string {
	if len(r.Texts) == 0 {
		return ""
	}
	return r.Texts[len(r.Texts)-1]
}
