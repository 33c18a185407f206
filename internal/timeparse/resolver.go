package timeparse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnrecognizedTime is returned when neither the natural-language parser
// nor the relative fallback pattern matches the input.
var ErrUnrecognizedTime = errors.New("time expression not recognized")

// DefaultMessage is used when the input contains a time but no message text.
const DefaultMessage = "Reminder"

var relativePattern = regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(minute|hour|day)s?\b`)

// Resolver turns free-form reminder text into an absolute UTC instant plus
// the remaining message. Parsing runs in two stages: a general
// natural-language pass, then a restricted "in N minutes|hours|days"
// fallback, so the most common relative phrasing never depends on the
// general parser.
type Resolver struct {
	parser *when.Parser
}

func NewResolver() *Resolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &Resolver{parser: w}
}

// Resolve parses text anchored at ref. A bare wall-clock time ("3pm") is
// interpreted in loc, not UTC. The returned instant is UTC-normalized and
// always in the future relative to ref: ambiguous dates resolve forward.
func (r *Resolver) Resolve(text string, loc *time.Location, ref time.Time) (time.Time, string, error) {
	base := ref.In(loc)

	res, err := r.parser.Parse(text, base)
	if err == nil && res != nil {
		// Advance by calendar days in loc, not absolute 24h steps, so the
		// wall-clock the user named survives a DST transition.
		target := res.Time.In(loc)
		for !target.After(ref) {
			target = target.AddDate(0, 0, 1)
		}

		message := cleanMessage(text[:res.Index] + text[res.Index+len(res.Text):])
		return target.UTC(), message, nil
	}

	m := relativePattern.FindStringSubmatchIndex(text)
	if m == nil {
		return time.Time{}, "", ErrUnrecognizedTime
	}

	n, err := strconv.Atoi(text[m[2]:m[3]])
	if err != nil {
		return time.Time{}, "", ErrUnrecognizedTime
	}

	var d time.Duration
	switch strings.ToLower(text[m[4]:m[5]]) {
	case "minute":
		d = time.Duration(n) * time.Minute
	case "hour":
		d = time.Duration(n) * time.Hour
	case "day":
		d = time.Duration(n) * 24 * time.Hour
	}

	message := cleanMessage(text[:m[0]] + text[m[1]:])
	return ref.Add(d).UTC(), message, nil
}

// cleanMessage trims the leftover text around the matched time expression:
// whitespace is collapsed, a leading connective "to" is dropped, and an
// empty remainder falls back to DefaultMessage.
func cleanMessage(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	if len(s) >= 3 && strings.EqualFold(s[:3], "to ") {
		s = s[3:]
	} else if strings.EqualFold(s, "to") {
		s = ""
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMessage
	}

	return s
}
