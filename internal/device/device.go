package device

import "github.com/Kvello/heatsim/internal/house"

type Device struct {
	ID string
	H  *house.House
}

func New(id string, h *house.House) *Device {
	return &Device{ID: id, H: h}
}
