package proto

import (
	"image"
)

// Display receives finished frames. Implementations own their transport
// (log, files, network) and may reject frames that do not fit.
type Display interface {
	Startup() error
	Shutdown() error

	DrawBitmap(posX uint16, posY uint16, image image.Image) error
}
