package configurator

import (
	"net/url"
	"strconv"
	"strings"
)

const serviceIDParam = "serviceId"

// URLState is the parsed form of the desk URLs this engine reads and
// rewrites: a locale path prefix plus an optional serviceId query
// parameter. The URL is the source of truth for the active locale, the
// engine only caches it.
type URLState struct {
	Locale       string
	Path         string
	ServiceID    int64
	HasServiceID bool
}

// ParseURL splits the locale prefix off the path and extracts serviceId.
// A present but unparseable serviceId keeps HasServiceID set with a zero
// ID so the reconciler can surface the invalid deep link.
func ParseURL(raw string, supported []string) URLState {
	state := URLState{Path: "/"}

	parsed, err := url.Parse(raw)
	if err != nil {
		return state
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	trimmed := strings.TrimPrefix(path, "/")
	if head, rest, _ := strings.Cut(trimmed, "/"); containsLocale(supported, head) {
		state.Locale = head
		path = "/" + rest
	}
	if path == "" {
		path = "/"
	}
	state.Path = path

	if raw := parsed.Query().Get(serviceIDParam); raw != "" {
		state.HasServiceID = true
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			state.ServiceID = id
		}
	}
	return state
}

func (u URLState) String() string {
	var sb strings.Builder
	if u.Locale != "" {
		sb.WriteString("/")
		sb.WriteString(u.Locale)
	}
	if u.Path != "/" || u.Locale == "" {
		sb.WriteString(u.Path)
	}
	if u.HasServiceID && u.ServiceID > 0 {
		sb.WriteString("?")
		sb.WriteString(serviceIDParam)
		sb.WriteString("=")
		sb.WriteString(strconv.FormatInt(u.ServiceID, 10))
	}
	return sb.String()
}

func (u URLState) WithLocale(locale string) URLState {
	u.Locale = locale
	return u
}

func (u URLState) WithPath(path string) URLState {
	u.Path = path
	return u
}

func (u URLState) WithServiceID(id int64) URLState {
	u.ServiceID = id
	u.HasServiceID = true
	return u
}

func (u URLState) WithoutServiceID() URLState {
	u.ServiceID = 0
	u.HasServiceID = false
	return u
}

func containsLocale(supported []string, candidate string) bool {
	for _, locale := range supported {
		if locale == candidate {
			return true
		}
	}
	return false
}
