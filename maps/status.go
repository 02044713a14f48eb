package maps

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-gmaps/models"
)

// classifyStatus maps the HTTP status of a raw response onto the error
// taxonomy. A nil return means 2xx: processing continues to body decoding.
//
// The mapping is exact and ordered by specificity:
//
//	200-299            ok
//	301, 302, 303, 307 ErrRedirect (message carries the Location header)
//	304, 400-499       ErrClient (401 deliberately not split out)
//	500-599            ErrServer
//	anything else      ErrTransmission (including 300, 305, 306, 308)
func classifyStatus(resp models.RawResponse) error {
	code := resp.StatusCode

	if code >= 200 && code <= 299 {
		return nil
	}

	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther, http.StatusTemporaryRedirect:
		return newError(ErrRedirect, "redirected to "+resp.Location(), &resp)
	}

	switch {
	case code == http.StatusNotModified, code >= 400 && code <= 499:
		return newError(ErrClient, statusMessage(code), &resp)
	case code >= 500 && code <= 599:
		return newError(ErrServer, statusMessage(code), &resp)
	default:
		return newError(ErrTransmission, statusMessage(code), &resp)
	}
}

func statusMessage(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "unexpected HTTP status " + strconv.Itoa(code)
}
