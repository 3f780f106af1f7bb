// Package config provides configuration loading, merging, and validation
// facilities for the catalog server and seeder.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables (optionally seeded from a ".env" file)
//  3. JSON config file
//  4. Built-in defaults (SQLite at /tmp/test.db, port 3000)
//
// The main entry points are [GetStructuredConfig] and [Load].
package config
