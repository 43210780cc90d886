// Copyright (c) the stuffit authors
// Licensed under the MIT license

// Package stuffit reads classic Mac OS StuffIt archives: container parsing,
// per-entry data/resource forks, Finder metadata, and the two bespoke
// decompressors StuffIt used for its smaller compression methods,
// TableHuff (13) and Installer (14). It never writes archives and never
// touches a filesystem; callers supply an io.ReaderAt and get back an
// Archive to query.
package stuffit
