package object

import (
	"github.com/wvanheerde/bacstack/btype"
)

// DeviceConfig seeds the identification properties of a Device object.
type DeviceConfig struct {
	Instance   uint32
	Name       string
	VendorName string
	VendorID   uint64
	ModelName  string

	// MaxAPDULength defaults to 1476, the BACnet/IP limit.
	MaxAPDULength uint64
}

// Service choices marked in protocolServicesSupported, conform clause 21.
// The set covers what this stack initiates and answers.
var servicesSupported = func() btype.BitString {
	var bits btype.BitString
	for _, choice := range []int{
		1,  // confirmed-cov-notification
		2,  // confirmed-event-notification
		5,  // subscribe-cov
		12, // read-property
		14, // read-property-multiple
		15, // write-property
		26, // i-am
		34, // who-is
	} {
		bits.SetBit(choice, true)
	}
	bits.Unused = uint8(len(bits.Data)*8 - 40)
	return bits
}()

// NewDevice returns a Device object with the computed clock and object-list
// properties installed.
func NewDevice(cfg DeviceConfig) *Object {
	if cfg.MaxAPDULength == 0 {
		cfg.MaxAPDULength = 1476
	}

	o := New(Device, cfg.Instance, cfg.Name)
	o.values[btype.PropSystemStatus] = btype.StatusOperational
	o.values[btype.PropVendorName] = cfg.VendorName
	o.values[btype.PropVendorIdentifier] = cfg.VendorID
	o.values[btype.PropModelName] = cfg.ModelName
	o.values[btype.PropFirmwareRevision] = "1.0"
	o.values[btype.PropApplicationSoftwareVersion] = "1.0"
	o.values[btype.PropProtocolVersion] = uint64(1)
	o.values[btype.PropProtocolRevision] = uint64(22)
	o.values[btype.PropMaxApduLengthAccepted] = cfg.MaxAPDULength
	o.values[btype.PropSegmentationSupported] = btype.NoSegmentation
	o.values[btype.PropApduTimeout] = uint64(3000)
	o.values[btype.PropNumberOfApduRetries] = uint64(3)
	o.values[btype.PropDeviceAddressBinding] = []btype.Value{}
	o.values[btype.PropDatabaseRevision] = uint64(1)

	o.Compute(btype.PropProtocolServicesSupported, Accessor{
		Get: func(o *Object) (btype.Value, error) { return servicesSupported, nil },
	})
	o.Compute(btype.PropLocalDate, Accessor{
		Get: func(o *Object) (btype.Value, error) {
			return btype.DateOf(o.LocalTime()), nil
		},
	})
	o.Compute(btype.PropLocalTime, Accessor{
		Get: func(o *Object) (btype.Value, error) {
			return btype.TimeOf(o.LocalTime()), nil
		},
	})
	o.Compute(btype.PropObjectList, Accessor{
		Get: func(o *Object) (btype.Value, error) {
			if o.app == nil {
				return []btype.Value{o.ID()}, nil
			}
			ids := o.app.ObjectIDs()
			list := make([]btype.Value, len(ids))
			for i, id := range ids {
				list[i] = id
			}
			return list, nil
		},
	})
	return o
}
