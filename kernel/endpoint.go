package kernel

// Endpoint identifies a message destination.
type Endpoint uint8

const (
	// EPKernel is reserved as the origin of system messages.
	EPKernel Endpoint = iota
	// EPLogger receives MsgLog lines and writes them out-of-band.
	EPLogger
	// EPRender receives MsgKey events that steer the camera.
	EPRender

	epCount
)
