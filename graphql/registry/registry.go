// Package registry lets custom packages expose extension fields on the
// GraphQL schema without touching the core resolver. Extensions register
// by name from init(); the extension(name:, args:) query field dispatches
// to them through Resolve.
package registry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"storefront.GO/core/registry"
)

// ResolverFunc resolves one extension field. args is the JSON-decoded
// argument map from the query.
type ResolverFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

var (
	extMu     sync.Mutex
	resolving int32
)

func storedResolvers() map[string]ResolverFunc {
	v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryGraphQL)
	if !ok || v == nil {
		return map[string]ResolverFunc{}
	}
	return v.(map[string]ResolverFunc)
}

// Register adds an extension resolver under a unique name. Call from
// init(); after the first Resolve the registry is locked and late
// registration panics.
func Register(name string, resolve ResolverFunc) {
	extMu.Lock()
	defer extMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryGraphQL) {
		panic("graphql/registry: locked after first request, register from init()")
	}
	resolvers := storedResolvers()
	if _, exists := resolvers[name]; exists {
		panic("graphql/registry: extension name already taken: " + name)
	}
	resolvers[name] = resolve
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, resolvers)
}

// Unregister removes an extension, unlocking the registry first so tests
// can clean up after themselves.
func Unregister(name string) {
	extMu.Lock()
	defer extMu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryGraphQL)
	atomic.StoreInt32(&resolving, 0)
	resolvers := storedResolvers()
	delete(resolvers, name)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryGraphQL, resolvers)
}

// Resolve dispatches the extension field to its registered resolver. The
// first call locks the registry; the resolver set is read-only from then
// on, so lookups take no lock.
func Resolve(ctx context.Context, field string, args map[string]interface{}) (interface{}, error) {
	if atomic.CompareAndSwapInt32(&resolving, 0, 1) {
		registry.GlobalRegistry.Lock(registry.KeyRegistryGraphQL)
	}
	resolve, ok := storedResolvers()[field]
	if !ok {
		return nil, fmt.Errorf("unknown extension: %s", field)
	}
	return resolve(ctx, args)
}

// Names lists the registered extension names.
func Names() []string {
	extMu.Lock()
	defer extMu.Unlock()
	resolvers := storedResolvers()
	names := make([]string, 0, len(resolvers))
	for name := range resolvers {
		names = append(names, name)
	}
	return names
}
