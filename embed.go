package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the binary: folio.js,
// the client glue for scroll requests, notifications and scroll reporting.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
