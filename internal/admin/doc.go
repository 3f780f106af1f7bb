// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admin holds the registry of entities exposed by the admin panel.
//
// Every entity is a [ModelView]: a named set of list, get, create and delete
// operations producing serialized records. [NewView] builds one from plain
// functions so the catalog services can be registered without adapters of
// their own. The HTTP routes under /admin/ are mounted by the http handler
// package, which looks views up through [Registry.View].
package admin
