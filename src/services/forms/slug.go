package forms

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9]`)
	dashRun    = regexp.MustCompile(`-+`)
	edgeDashes = regexp.MustCompile(`^-|-$`)
)

// Slugify builds the public slug of a form: the lower-cased title with every
// non-alphanumeric run turned into a single dash, suffixed with the creation
// time in Unix milliseconds.
func Slugify(title string, now time.Time) string {
	s := strings.ToLower(title)
	s = nonAlnum.ReplaceAllString(s, "-")
	s = dashRun.ReplaceAllString(s, "-")
	s = edgeDashes.ReplaceAllString(s, "")
	return s + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
