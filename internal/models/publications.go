package models

import (
	"regexp"
	"strings"
)

// Publication is one listed paper.
type Publication struct {
	Year string `json:"year"`
	Text string `json:"text"`
	Link string `json:"link"`
}

// Publications groups a record's papers by venue kind. Either list may be
// absent or empty.
type Publications struct {
	Journal    []Publication `json:"journal,omitempty"`
	Conference []Publication `json:"conference,omitempty"`
}

func (p Publications) clone() Publications {
	c := Publications{}
	if len(p.Journal) > 0 {
		c.Journal = make([]Publication, len(p.Journal))
		copy(c.Journal, p.Journal)
	}
	if len(p.Conference) > 0 {
		c.Conference = make([]Publication, len(p.Conference))
		copy(c.Conference, p.Conference)
	}
	return c
}

// yearPrefix matches an optional leading 4-digit year followed by an
// optional separator (hyphen, en/em dash, or colon).
var yearPrefix = regexp.MustCompile(`^(\d{4})\s*[-–—:]?\s*(.*)$`)

// ParsePublicationLines parses the plain-text publication format: one entry
// per line as "YYYY - text | link", with both the year prefix and the link
// suffix optional. A line without a leading 4-digit year is kept whole as
// the text, with an empty year. Blank lines are skipped.
func ParsePublicationLines(text string) []Publication {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var pubs []Publication
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if line == "" {
			continue
		}

		// The link is everything after the last '|'; earlier pipes stay
		// part of the text.
		link := ""
		left := line
		if i := strings.LastIndex(line, "|"); i >= 0 {
			link = strings.TrimSpace(line[i+1:])
			left = strings.TrimSpace(line[:i])
		}

		if m := yearPrefix.FindStringSubmatch(left); m != nil {
			pubs = append(pubs, Publication{Year: m[1], Text: m[2], Link: link})
			continue
		}
		pubs = append(pubs, Publication{Year: "", Text: left, Link: link})
	}
	return pubs
}

// FormatPublicationLines renders publications back into the plain-text
// line format the editor prompts with, the inverse of ParsePublicationLines.
func FormatPublicationLines(pubs []Publication) string {
	lines := make([]string, 0, len(pubs))
	for _, p := range pubs {
		var b strings.Builder
		if p.Year != "" {
			b.WriteString(p.Year)
			b.WriteString(" - ")
		}
		b.WriteString(p.Text)
		if p.Link != "" {
			b.WriteString(" | ")
			b.WriteString(p.Link)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
