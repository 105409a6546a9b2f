package logger

import (
	"time"

	"github.com/vjeantet/jodaTime"
)

// DefaultTimestampFormat is the timestamp pattern used by NewConfig.
const DefaultTimestampFormat = "yyyy-MM-dd HH:mm:ss"

// timeRenderer renders timestamps for a Joda-style date pattern such as
// "yyyy-MM-dd HH:mm:ss" in the location captured when it was built.
// It is immutable and may be shared between goroutines.
type timeRenderer struct {
	pattern string
	loc     *time.Location
}

func compileTimePattern(pattern string, loc *time.Location) *timeRenderer {
	return &timeRenderer{pattern: pattern, loc: loc}
}

// render never panics: a pattern jodaTime cannot handle yields "".
func (r *timeRenderer) render(t time.Time) (out string) {
	if r == nil || r.pattern == "" {
		return ""
	}
	if r.loc != nil {
		t = t.In(r.loc)
	}
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	return jodaTime.Format(r.pattern, t)
}
