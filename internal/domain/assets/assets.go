package assets

import (
	"context"
	"errors"
)

// ErrNotFound es el sentinel de "no hay asset": quien llama cae al fallback textual.
var ErrNotFound = errors.New("asset not found")

type Asset struct {
	Key  string
	Path string // relativo a la raíz de assets estáticos
}

// Catalog resuelve assets (imágenes) por key.
type Catalog interface {
	Lookup(ctx context.Context, key string) (Asset, error)
}
