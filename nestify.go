package translate

// Nestify builds a catalog from dotted keys, every key becoming a leaf holding value.
// Keys sharing a prefix share the sub catalog of that prefix: "c.a" and "c.b" both end up below a single "c".
func Nestify(keys []string, value string) *Catalog {
	c := NewCatalog()
	for _, key := range keys {
		c.Set(key, value)
	}

	return c
}
