package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Format is the output style requested from the backend.
type Format string

const (
	FormatParagraph    Format = "paragraph"
	FormatBulletPoints Format = "bullet_points"
	FormatOneLiner     Format = "one_liner"
	FormatAcademic     Format = "academic"
)

var formats = []Format{FormatParagraph, FormatBulletPoints, FormatOneLiner, FormatAcademic}

// ParseFormat resolves a user-supplied format name. Empty means paragraph.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return FormatParagraph, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (valid: paragraph, bullet_points, one_liner, academic)", s)
}

// Length is the desired summary length, sent as "1", "2" or "3".
type Length int

const (
	LengthShort  Length = 1
	LengthMedium Length = 2
	LengthLong   Length = 3
)

func (l Length) Valid() bool {
	return l >= LengthShort && l <= LengthLong
}

func (l Length) String() string {
	return strconv.Itoa(int(l))
}

// ParseLength accepts either the slider value or its name.
func ParseLength(s string) (Length, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "2", "medium":
		return LengthMedium, nil
	case "1", "short":
		return LengthShort, nil
	case "3", "long":
		return LengthLong, nil
	}
	return 0, fmt.Errorf("invalid length %q (valid: 1|short, 2|medium, 3|long)", s)
}

// FileInput is an uploaded file held in memory.
type FileInput struct {
	Name    string
	Content []byte
}

// SummaryRequest is the summarize form as submitted.
// When both Text and File are set the file wins.
type SummaryRequest struct {
	Text     string
	File     *FileInput
	Format   Format
	Language string
	Length   Length
}

// HasInput reports whether there is anything to summarize.
func (r SummaryRequest) HasInput() bool {
	return r.Text != "" || r.File != nil
}

// UsesFile reports whether the file field is the one that gets sent.
func (r SummaryRequest) UsesFile() bool {
	return r.File != nil
}
