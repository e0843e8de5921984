package codec

import (
	"github.com/larkspur-oss/imgio/pkg/provider"
)

func init() {
	provider.Register(provider.Probe{
		Name:       "png",
		Extensions: []string{"png"},
		Open:       OpenPNG,
	})
	provider.Register(provider.Probe{
		Name:       "jpeg",
		Extensions: []string{"jpg", "jpeg"},
		Open:       OpenJPEG,
	})
	provider.Register(provider.Probe{
		Name:       "webp",
		Extensions: []string{"webp"},
		Open:       OpenWebP,
	})
	provider.Register(provider.Probe{
		Name:       "exr",
		Extensions: []string{"exr"},
		Open:       OpenEXR,
	})
	provider.Register(provider.Probe{
		Name:       "hdr",
		Extensions: []string{"hdr"},
		Open:       OpenHDR,
	})
	provider.Register(provider.Probe{
		Name:       "tga",
		Extensions: []string{"tga"},
		Open:       OpenTGA,
	})
	provider.Register(provider.Probe{
		Name:       "bmp",
		Extensions: []string{"bmp"},
		Open:       OpenBMP,
	})
	provider.Register(provider.Probe{
		Name:       "psd",
		Extensions: []string{"psd"},
		Open:       OpenPSD,
	})
	provider.Register(provider.Probe{
		Name:       "gif",
		Extensions: []string{"gif"},
		Open:       OpenGIF,
	})
}
