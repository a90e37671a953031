// Package api holds the OpenAPI document of the HTTP interface. The server
// stubs in internal/generated/servers are generated from it.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -generate types,server -package servers -o ../internal/generated/servers/server.gen.go openapi.yml

//go:embed openapi.yml
var OpenAPI []byte
