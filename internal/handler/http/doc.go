// Package http implements the REST transport of the catalog.
//
// It wires the chi router, the request handlers for users, people, planets
// and favorites, the admin panel routes and the sitemap. Request tracing,
// access logging, CORS, panic recovery, compression and the optional request
// timeout are applied as middleware before requests reach the service layer.
package http
