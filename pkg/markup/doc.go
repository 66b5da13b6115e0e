/*
Package markup expands XML-like role tags into themed terminal text.

Tags name theme roles or text attributes and may nest:

	<primary>Title</primary> <muted>(<bold>3</bold> items)</muted>

# Core Functions

  - Expand: paints tags with a theme
  - Render: executes a text/template, then expands tags
  - Strip: removes every tag, leaving plain text

# Tags

Role tags are the theme roles: primary, secondary, tertiary, success, error,
warning, info, help and muted. Attribute tags are bold, dim, italic and
underline. A link tag emits a terminal hyperlink when the theme allows it:

	<link href="https://example.com">docs</link>

The <no-format> tag only renders when the theme has no color:

	<success>done</success><no-format> (ok)</no-format>

Unknown tags are an ErrInvalidInput error. Input that is not well-formed
XML is returned unchanged together with an error.
*/
package markup
