// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// methodNotAllowed replaces chi's default 405 response: an unsupported
// method on a known path gets the same 404 as an unknown path, so the
// export layout cannot be probed with other methods.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
