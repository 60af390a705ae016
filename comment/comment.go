// Package comment implements the Vorbis comment block: a vendor string and
// an ordered list of "TAG=value" user comments.
//
// # Packet Layout
//
//	32 bits  vendor length
//	         vendor bytes
//	32 bits  comment count
//	         per comment: 32-bit length, then bytes
//	 1 bit   framing marker, always 1
//
// Tags are matched case-insensitively over ASCII letters only; values are
// opaque UTF-8.
package comment

import (
	"fmt"
	"strings"
)

// DefaultVendor is the vendor string New puts in freshly built blocks.
const DefaultVendor = "govorbis"

// Comment is a vendor string plus user comments.
type Comment struct {
	// Vendor identifies the encoder that wrote the block.
	Vendor string

	// Comments holds the user comments in stream order.
	// Common tags: TITLE, ARTIST, ALBUM, DATE, TRACKNUMBER, GENRE.
	Comments []string
}

// New returns an empty block carrying DefaultVendor.
func New() *Comment {
	return &Comment{Vendor: DefaultVendor}
}

// Add appends a raw comment.
func (c *Comment) Add(text string) {
	c.Comments = append(c.Comments, text)
}

// AddTag appends "tag=value".
func (c *Comment) AddTag(tag, value string) {
	c.Add(tag + "=" + value)
}

// Comment returns the i-th comment.
func (c *Comment) Comment(i int) (string, bool) {
	if i < 0 || i >= len(c.Comments) {
		return "", false
	}
	return c.Comments[i], true
}

// Clear drops the vendor and every comment.
func (c *Comment) Clear() {
	c.Vendor = ""
	c.Comments = nil
}

// Query returns the value of the occurrence-th (0-based) comment whose
// prefix matches tag followed by '='. The value is everything after the
// first '='.
func (c *Comment) Query(tag string, occurrence int) (string, bool) {
	prefix := tag + "="
	found := 0
	for _, s := range c.Comments {
		if !hasTagPrefix(s, prefix) {
			continue
		}
		if found == occurrence {
			return s[strings.IndexByte(s, '=')+1:], true
		}
		found++
	}
	return "", false
}

// QueryCount returns how many comments carry tag.
func (c *Comment) QueryCount(tag string) int {
	prefix := tag + "="
	n := 0
	for _, s := range c.Comments {
		if hasTagPrefix(s, prefix) {
			n++
		}
	}
	return n
}

// String renders the block one field per line.
func (c *Comment) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Vendor: %s", c.Vendor)
	for _, s := range c.Comments {
		fmt.Fprintf(&sb, "\nComment: %s", s)
	}
	return sb.String()
}

// hasTagPrefix reports whether s starts with prefix, folding ASCII letters.
func hasTagPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if asciiUpper(s[i]) != asciiUpper(prefix[i]) {
			return false
		}
	}
	return true
}

func asciiUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
