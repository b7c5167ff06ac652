package transport

import (
	"net/http"
)

// cookieWrap is an http.RoundTripper that attaches cookies from a Jar
// before delegating to the inner RoundTripper, and stores response cookies
// back into the Jar.
type cookieWrap struct {
	inner http.RoundTripper
	jar   http.CookieJar
}

// WrapWithCookieJar wraps inner so that cookies from jar are sent and updated on each
// request/response. A nil inner uses http.DefaultTransport, a nil jar returns inner.
func WrapWithCookieJar(inner http.RoundTripper, jar http.CookieJar) http.RoundTripper {
	if inner == nil {
		inner = http.DefaultTransport
	}
	if jar == nil {
		return inner
	}
	return &cookieWrap{inner: inner, jar: jar}
}

func (w *cookieWrap) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone req to avoid mutating caller headers
	clone := req.Clone(req.Context())
	for _, c := range w.jar.Cookies(clone.URL) {
		if _, err := clone.Cookie(c.Name); err == nil {
			continue // explicit request cookie wins
		}
		clone.AddCookie(c)
	}
	resp, err := w.inner.RoundTrip(clone)
	if err != nil {
		return nil, err
	}
	if cookies := resp.Cookies(); len(cookies) > 0 {
		w.jar.SetCookies(clone.URL, cookies)
	}
	return resp, nil
}
