package ktx

import (
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

func init() {
	provider.Register(provider.Probe{
		Name:       "ktx",
		Extensions: []string{"ktx"},
		Open: func(r stream.Reader) (provider.Provider, error) {
			return Open(r)
		},
	})
}
