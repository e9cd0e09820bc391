package diag

import (
	"bytes"
	"fmt"
	"strings"
)

// Context is a range of text in a source code. It is typically used for
// errors that can be associated with a part of the source code, like literal
// decode errors and traceback entries.
type Context struct {
	Name   string
	Source string
	Ranging

	savedShowInfo *rangeShowInfo
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range(), nil}
}

// Information about the source range that are needed for showing.
type rangeShowInfo struct {
	// Head is the piece of text immediately before Culprit, extending to, but
	// not including the closest line boundary. If Culprit already starts after
	// a line boundary, Head is an empty string.
	Head string
	// Culprit is Source[From:To], with any trailing newline stripped.
	Culprit string
	// Tail is the piece of text immediately after Culprit, extending to, but
	// not including the closest line boundary. If Culprit already ends before
	// a line boundary, Tail is an empty string.
	Tail string
}

// Variables controlling the style of the culprit. Can be overridden in tests.
var (
	culpritStart       = "\033[1;4m"
	culpritEnd         = "\033[m"
	culpritPlaceHolder = "^"
)

func (c *Context) showInfo() *rangeShowInfo {
	if c.savedShowInfo != nil {
		return c.savedShowInfo
	}

	before := c.Source[:c.From]
	culprit := c.Source[c.From:c.To]
	after := c.Source[c.To:]

	head := lastLine(before)

	// If the culprit ends with a newline, strip it. Otherwise, tail may be
	// non-empty.
	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(after)
	}

	c.savedShowInfo = &rangeShowInfo{head, culprit, tail}
	return c.savedShowInfo
}

// Show shows the context, in the format "name:line:col: source", where the
// part of the source that the context points to is highlighted. If the
// culprit spans multiple lines, later lines are prefixed with the indent.
func (c *Context) Show(indent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.describePosition() + ": " + c.relevantSource(indent)
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

// describePosition returns "name:line:col" for the start of the range, or a
// description of why the position cannot be determined. Line and column are
// both 1-based; the column is counted in bytes.
func (c *Context) describePosition() string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	before := c.Source[:c.From]
	line := strings.Count(before, "\n") + 1
	col := c.From - (strings.LastIndexByte(before, '\n') + 1) + 1
	return fmt.Sprintf("%s:%d:%d", c.Name, line, col)
}

func (c *Context) relevantSource(indent string) string {
	info := c.showInfo()

	var buf bytes.Buffer
	buf.WriteString(info.Head)

	culprit := info.Culprit
	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			buf.WriteByte('\n')
			buf.WriteString(indent)
		}
		buf.WriteString(culpritStart)
		buf.WriteString(line)
		buf.WriteString(culpritEnd)
	}

	buf.WriteString(info.Tail)
	return buf.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens to
	// be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
