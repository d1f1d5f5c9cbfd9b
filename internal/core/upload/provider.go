// Package upload stores generated files (document PDFs, report exports)
// and returns retrievable URLs.
package upload

// Provider persists a blob under a key and returns its public URL.
type Provider interface {
	Upload(key string, data []byte, contentType string) (string, error)
	Name() string
}
