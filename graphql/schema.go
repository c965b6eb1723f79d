package graphql

import (
	"strings"
	"sync"

	_ "embed"
)

//go:embed schema.graphqls
var baseSchema string

var (
	extMu      sync.Mutex
	extensions []string
)

// RegisterSchemaExtension appends extra SDL to the base schema. Call from
// init() in custom packages, before the server parses the schema.
func RegisterSchemaExtension(sdl string) {
	extMu.Lock()
	defer extMu.Unlock()
	extensions = append(extensions, strings.TrimSpace(sdl))
}

// Schema returns the embedded base schema followed by any registered
// extensions.
func Schema() string {
	extMu.Lock()
	defer extMu.Unlock()
	if len(extensions) == 0 {
		return baseSchema
	}
	return baseSchema + "\n\n" + strings.Join(extensions, "\n\n")
}
