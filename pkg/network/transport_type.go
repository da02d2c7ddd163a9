package network

type TransportType string

const (
	TransportTypeBus   TransportType = "bus"
	TransportTypeTrain TransportType = "train"
	TransportTypeFerry TransportType = "ferry"
)

// ParseTransportType matches the exact lower case tag used in documents.
func ParseTransportType(s string) (TransportType, bool) {
	switch TransportType(s) {
	case TransportTypeBus, TransportTypeTrain, TransportTypeFerry:
		return TransportType(s), true
	}

	return "", false
}
