package ktx2

import (
	"github.com/larkspur-oss/imgio/pkg/provider"
	"github.com/larkspur-oss/imgio/pkg/stream"
)

func init() {
	provider.Register(provider.Probe{
		Name:       "ktx2",
		Extensions: []string{"ktx2"},
		Open: func(r stream.Reader) (provider.Provider, error) {
			return Open(r)
		},
	})
}
