package markup

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/beevik/etree"

	"github.com/arthur-debert/termrender/pkg/ansi"
	"github.com/arthur-debert/termrender/pkg/errors"
	"github.com/arthur-debert/termrender/pkg/logging"
	"github.com/arthur-debert/termrender/pkg/theme"
)

const (
	rootTag     = "markup"
	noFormatTag = "no-format"
	linkTag     = "link"
)

var attributes = map[string]func(theme.Theme, string) string{
	"bold":      theme.Theme.Bold,
	"dim":       theme.Theme.Dim,
	"italic":    theme.Theme.Italic,
	"underline": theme.Theme.Underline,
}

// Expand paints the tags in input with t.
func Expand(input string, t theme.Theme) (string, error) {
	if !strings.Contains(input, "<") {
		return input, nil
	}
	root, err := parse(input)
	if err != nil {
		return input, err
	}
	var b strings.Builder
	if err := expandChildren(&b, root, t); err != nil {
		return input, err
	}
	return b.String(), nil
}

// Render executes text as a template with data, then expands its tags.
func Render(text string, data any, t theme.Theme) (string, error) {
	tmpl, err := template.New("markup").Option("missingkey=error").Parse(text)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "invalid template")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "template execution failed")
	}
	return Expand(buf.String(), t)
}

// Strip removes all tags from input. The content of no-format tags is kept.
// Input that does not parse is returned unchanged.
func Strip(input string) string {
	if !strings.Contains(input, "<") {
		return input
	}
	root, err := parse(input)
	if err != nil {
		return input
	}
	var b strings.Builder
	stripChildren(&b, root)
	return b.String()
}

func parse(input string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		logger := logging.GetLogger("markup")
		logger.Debug().Err(err).Msg("markup is not well-formed")
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "malformed markup")
	}
	return doc.Root(), nil
}

func expandChildren(b *strings.Builder, el *etree.Element, t theme.Theme) error {
	for _, tok := range el.Child {
		switch tok := tok.(type) {
		case *etree.CharData:
			b.WriteString(tok.Data)
		case *etree.Element:
			s, err := expandElement(tok, t)
			if err != nil {
				return err
			}
			b.WriteString(s)
		}
	}
	return nil
}

func expandElement(el *etree.Element, t theme.Theme) (string, error) {
	name := strings.ToLower(el.Tag)
	if name == noFormatTag && t.Colorized() {
		return "", nil
	}

	var inner strings.Builder
	if err := expandChildren(&inner, el, t); err != nil {
		return "", err
	}
	text := inner.String()

	switch {
	case name == noFormatTag:
		return text, nil
	case name == linkTag:
		href := el.SelectAttrValue("href", "")
		if href == "" || !t.Hyperlinks() {
			return text, nil
		}
		return ansi.Hyperlink(href, text), nil
	case attributes[name] != nil:
		return attributes[name](t, text), nil
	}

	role, ok := lookupRole(name)
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown markup tag <%s>", el.Tag).
			WithDetail("tag", el.Tag)
	}
	return t.Paint(role, text), nil
}

func lookupRole(name string) (theme.Role, bool) {
	for _, r := range theme.Roles {
		if string(r) == name {
			return r, true
		}
	}
	return "", false
}

func stripChildren(b *strings.Builder, el *etree.Element) {
	for _, tok := range el.Child {
		switch tok := tok.(type) {
		case *etree.CharData:
			b.WriteString(tok.Data)
		case *etree.Element:
			stripChildren(b, tok)
		}
	}
}

// Tags lists the tag names Expand understands.
func Tags() []string {
	names := make([]string, 0, len(theme.Roles)+len(attributes)+2)
	for _, r := range theme.Roles {
		names = append(names, string(r))
	}
	return append(names, "bold", "dim", "italic", "underline", linkTag, noFormatTag)
}
