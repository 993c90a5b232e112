package asset

import (
	"sync"

	"github.com/akmonengine/tableau/scene"
)

// Cache shares loaded meshes and textures between callers, keyed by
// path. Cached entries are never released; textures owned by a single
// widget should be loaded with LoadTexture instead.
type Cache struct {
	mu       sync.RWMutex
	meshes   map[string]*scene.Mesh
	textures map[string]*scene.Texture
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		meshes:   make(map[string]*scene.Mesh),
		textures: make(map[string]*scene.Texture),
	}
}

// Mesh returns the cached mesh for path, loading it on first use.
func (cache *Cache) Mesh(path string) (*scene.Mesh, error) {
	cache.mu.RLock()
	mesh, ok := cache.meshes[path]
	cache.mu.RUnlock()
	if ok {
		return mesh, nil
	}

	mesh, err := LoadMesh(path)
	if err != nil {
		return nil, err
	}
	// BoundingBox caches lazily, warm it before the mesh is shared.
	mesh.BoundingBox()

	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cached, ok := cache.meshes[path]; ok {
		return cached, nil
	}
	cache.meshes[path] = mesh

	return mesh, nil
}

// Texture returns the cached texture for path, loading it on first use.
func (cache *Cache) Texture(path string) (*scene.Texture, error) {
	cache.mu.RLock()
	texture, ok := cache.textures[path]
	cache.mu.RUnlock()
	if ok {
		return texture, nil
	}

	texture, err := LoadTexture(path)
	if err != nil {
		return nil, err
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cached, ok := cache.textures[path]; ok {
		return cached, nil
	}
	cache.textures[path] = texture

	return texture, nil
}
