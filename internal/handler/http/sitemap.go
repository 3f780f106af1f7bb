package http

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-starwars-catalog/internal/logger"
)

var sitemapTemplate = template.Must(template.New("sitemap").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Star Wars Catalog API</title></head>
<body>
<h1>Star Wars Catalog API</h1>
<p>API host: <code>{{.Host}}</code></p>
<h2>Endpoints</h2>
<ul>
{{- range .Routes}}
<li><code>{{.Method}}</code> {{if .Link}}<a href="{{.Pattern}}">{{.Pattern}}</a>{{else}}{{.Pattern}}{{end}}</li>
{{- end}}
</ul>
<h2>Admin</h2>
<ul>
{{- range .Admin}}
<li><code>{{.Method}}</code> {{if .Link}}<a href="{{.Pattern}}">{{.Pattern}}</a>{{else}}{{.Pattern}}{{end}}</li>
{{- end}}
</ul>
</body>
</html>
`))

type sitemapRoute struct {
	Method  string
	Pattern string
	// Link is set for GET routes without path parameters.
	Link bool
}

type sitemapPage struct {
	Host   string
	Routes []sitemapRoute
	Admin  []sitemapRoute
}

// collectRoutes walks router and splits its routes into public and admin
// ones, each sorted by pattern then method.
func collectRoutes(router chi.Routes) (public, adminRoutes []sitemapRoute, err error) {
	err = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		entry := sitemapRoute{
			Method:  method,
			Pattern: route,
			Link:    method == http.MethodGet && !strings.Contains(route, "{"),
		}
		if route == adminPrefix || strings.HasPrefix(route, adminPrefix+"/") {
			adminRoutes = append(adminRoutes, entry)
		} else {
			public = append(public, entry)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sortRoutes(public)
	sortRoutes(adminRoutes)
	return public, adminRoutes, nil
}

func sortRoutes(routes []sitemapRoute) {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Pattern != routes[j].Pattern {
			return routes[i].Pattern < routes[j].Pattern
		}
		return routes[i].Method < routes[j].Method
	})
}

// sitemap returns the handler of GET /, an HTML page listing every route
// registered on router.
func sitemap(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		public, adminRoutes, err := collectRoutes(router)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		page := sitemapPage{Host: r.Host, Routes: public, Admin: adminRoutes}
		if err = sitemapTemplate.Execute(w, page); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "sitemap").Msg("error rendering sitemap")
		}
	}
}
