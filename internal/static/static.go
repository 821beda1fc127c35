package static

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// NewHandler serves the published static directory. Unknown paths and
// directories are 404; there is no index fallback.
func NewHandler(fsys fs.FS) http.Handler {
	fileServer := http.FileServer(http.FS(fsys))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upath := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		info, err := fs.Stat(fsys, upath)
		if upath == "" || err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}
		if path.Ext(upath) == ".json" {
			// regenerated on every refresh
			w.Header().Set("Cache-Control", "no-cache")
		}
		fileServer.ServeHTTP(w, r)
	})
}
