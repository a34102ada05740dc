package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/winestats/internal/analysis"
	"github.com/KaramelBytes/winestats/internal/utils"
)

// Format names an output encoding of a report.
type Format string

const (
	HTML     Format = "html"
	Markdown Format = "markdown"
	Text     Format = "text"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{HTML, Markdown, Text, JSON, YAML}

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat resolves a format name or common alias ("md", "yml", "txt").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html", "htm":
		return HTML, nil
	case "markdown", "md":
		return Markdown, nil
	case "text", "txt", "terminal":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}
}

// Write renders rep in the given format to w.
func Write(w io.Writer, rep *analysis.Report, format Format) error {
	switch format {
	case HTML:
		return WriteHTML(w, rep)
	case Markdown:
		_, err := io.WriteString(w, rep.Markdown())
		return err
	case Text:
		return WriteText(w, rep)
	case JSON:
		b, err := utils.PrettyJSON(rep)
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case YAML:
		b, err := yaml.Marshal(rep)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
