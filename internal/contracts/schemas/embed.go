package schemas

import "embed"

// SchemasFS содержит JSON-схемы входящих запросов.
//
//go:embed requests
var SchemasFS embed.FS
