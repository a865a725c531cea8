// Package api несёт встроенную OpenAPI-спецификацию для Swagger UI.
package api

import _ "embed"

//go:embed openapi.json
var OpenAPISpec []byte
