// Command bacserved runs a sample BACnet device with a handful of analog
// and binary points, intrinsic out-of-range alarming, and a notification
// class, logging every notification it would put on the wire. The network
// stack itself is out of scope here; the sink sender stands in for it.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wvanheerde/bacstack"
	"github.com/wvanheerde/bacstack/apdu"
	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
	"github.com/wvanheerde/bacstack/sched"
)

var (
	instanceFlag uint32
	nameFlag     string
	vendorFlag   string
	verboseFlag  bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "bacserved",
		Short: "Run a sample BACnet device application",
		RunE:  run,
	}
	cmd.Flags().Uint32Var(&instanceFlag, "instance", 999, "Device object instance number.")
	cmd.Flags().StringVar(&nameFlag, "name", "bacserved", "Device object name.")
	cmd.Flags().StringVar(&vendorFlag, "vendor", "bacstack", "Vendor name.")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Debug-level logging.")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logSender stands in for the APDU service layer.
type logSender struct{ log logrus.FieldLogger }

// Send implements the apdu.Sender interface.
func (s logSender) Send(_ context.Context, dst btype.Address, req apdu.Request) error {
	choice, confirmed := req.Service()
	l := new(btype.TagList)
	if err := req.EncodeTags(l); err != nil {
		return err
	}
	wire, err := l.Marshal(nil)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"destination": dst.String(),
		"service":     choice,
		"confirmed":   confirmed,
		"octets":      len(wire),
	}).Info("notification")
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	if verboseFlag {
		log.SetLevel(logrus.DebugLevel)
	}

	loop := sched.New()
	app, err := bacstack.New(bacstack.Config{
		Device: object.DeviceConfig{
			Instance:   instanceFlag,
			Name:       nameFlag,
			VendorName: vendorFlag,
			ModelName:  "bacserved",
		},
		Loop:   loop,
		Sender: logSender{log: log},
		Logger: log,
	})
	if err != nil {
		return err
	}

	nc := object.New(object.NotificationClass, 1, "alarms")
	nc.SetValue(btype.PropNotificationClass, uint64(1))
	nc.SetValue(btype.PropPriority, []btype.Value{
		uint64(64), uint64(64), uint64(64),
	})
	nc.SetValue(btype.PropAckRequired, btype.EventTransitionBits{})
	nc.SetValue(btype.PropRecipientList, []btype.Value{
		btype.Destination{
			ValidDays: btype.EveryDay,
			FromTime:  btype.Time{},
			ToTime:    btype.Time{Hour: 23, Minute: 59, Second: 59, Hundredths: 99},
			Recipient: btype.Recipient{
				Address: &btype.Address{MAC: []byte{192, 168, 1, 10, 0xba, 0xc0}},
			},
			IssueConfirmedNotifications: false,
			Transitions:                 btype.AllTransitions,
		},
	})
	if err := app.Add(nc); err != nil {
		return err
	}

	temperature := object.New(object.AnalogValue, 1, "zone-temperature")
	temperature.SetValue(btype.PropUnits, btype.UnitsDegreesCelsius)
	temperature.SetValue(btype.PropEventState, btype.StateNormal)
	temperature.SetValue(btype.PropOutOfService, false)
	temperature.SetValue(btype.PropRelinquishDefault, float32(20))
	temperature.SetValue(btype.PropPresentValue, float32(20))
	temperature.SetValue(btype.PropLowLimit, float32(5))
	temperature.SetValue(btype.PropHighLimit, float32(35))
	temperature.SetValue(btype.PropDeadband, float32(1))
	temperature.SetValue(btype.PropLimitEnable, btype.BothLimits)
	temperature.SetValue(btype.PropTimeDelay, uint64(10))
	temperature.SetValue(btype.PropEventEnable, btype.AllTransitions)
	temperature.SetValue(btype.PropNotificationClass, uint64(1))
	if err := app.Add(temperature); err != nil {
		return err
	}

	fan := object.New(object.BinaryValue, 1, "supply-fan")
	fan.SetValue(btype.PropEventState, btype.StateNormal)
	fan.SetValue(btype.PropOutOfService, false)
	fan.SetValue(btype.PropRelinquishDefault, btype.Inactive)
	fan.SetValue(btype.PropPresentValue, btype.Inactive)
	if err := app.Add(fan); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"device":  app.Device().ID().String(),
		"objects": len(app.ObjectIDs()),
	}).Info("device running")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := loop.Run(ctx); err != context.Canceled {
		return err
	}
	return nil
}
