package state

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 64

// Cache es la caché en memoria clave -> último valor deserializado.
// Varios accessors pueden compartirla; un valor de otro tipo cuenta como miss.
type Cache struct {
	lru *lru.Cache[string, any]
}

func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	l, err := lru.New[string, any](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

func mustCache(size int) *Cache {
	c, err := NewCache(size)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Cache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *Cache) Add(key string, v any) {
	c.lru.Add(key, v)
}

func (c *Cache) Remove(key string) {
	c.lru.Remove(key)
}

func (c *Cache) Contains(key string) bool {
	return c.lru.Contains(key)
}

func (c *Cache) Len() int {
	return c.lru.Len()
}

func cached[T any](c *Cache, key string) (T, bool) {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
