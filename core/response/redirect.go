package response

import "net/http"

// Redirect responds with 302 Found.
func Redirect(url string) Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectPermanent responds with 301 Moved Permanently.
func RedirectPermanent(url string) Response {
	return RedirectWithStatus(url, http.StatusMovedPermanently)
}

// RedirectSeeOther responds with 303 See Other, the usual answer to a
// successful form POST.
func RedirectSeeOther(url string) Response {
	return RedirectWithStatus(url, http.StatusSeeOther)
}

// RedirectTemporary responds with 307 Temporary Redirect, which keeps the
// request method.
func RedirectTemporary(url string) Response {
	return RedirectWithStatus(url, http.StatusTemporaryRedirect)
}

// RedirectWithStatus redirects with a 3xx status. Any other status is
// replaced by 302.
func RedirectWithStatus(url string, status int) Response {
	if status < http.StatusMultipleChoices || status > http.StatusPermanentRedirect {
		status = http.StatusFound
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, status)
		return nil
	}
}
