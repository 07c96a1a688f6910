// Package bacstack provides the application layer of an ASHRAE 135 device:
// object ownership, change-of-value subscription distribution, fault
// detection, and intrinsic and algorithmic event reporting per clause 13.
//
// All state lives on one cooperative task loop (see the sched package).
// Property writes invoke registered change monitors; the monitors mark the
// COV, fault and event algorithms dirty, and the algorithms run once on the
// next loop turn no matter how many properties changed.
package bacstack

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wvanheerde/bacstack/apdu"
	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
	"github.com/wvanheerde/bacstack/sched"
)

// Config assembles an Application.
type Config struct {
	Device object.DeviceConfig

	// Loop defaults to a fresh system-clock loop. Tests pass a simulated
	// one.
	Loop *sched.Loop

	// Sender delivers notification requests. With nil, notifications are
	// logged and dropped.
	Sender apdu.Sender

	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// An Application owns a set of objects, keyed by identifier and by name,
// and runs their COV, fault and event machinery.
type Application struct {
	loop   *sched.Loop
	log    logrus.FieldLogger
	sender apdu.Sender

	device *object.Object
	byID   map[btype.ObjectID]*object.Object
	byName map[string]*object.Object
	order  []btype.ObjectID

	detectors map[btype.ObjectID]*covDetector
	events    map[btype.ObjectID]*eventAlgorithm
	faults    map[btype.ObjectID]*faultAlgorithm
}

// New returns an application with its Device object installed.
func New(cfg Config) (*Application, error) {
	app := &Application{
		loop:      cfg.Loop,
		log:       cfg.Logger,
		sender:    cfg.Sender,
		byID:      make(map[btype.ObjectID]*object.Object),
		byName:    make(map[string]*object.Object),
		detectors: make(map[btype.ObjectID]*covDetector),
		events:    make(map[btype.ObjectID]*eventAlgorithm),
		faults:    make(map[btype.ObjectID]*faultAlgorithm),
	}
	if app.loop == nil {
		app.loop = sched.New()
	}
	if app.log == nil {
		app.log = logrus.StandardLogger()
	}

	device := object.NewDevice(cfg.Device)
	if err := app.Add(device); err != nil {
		return nil, err
	}
	app.device = device
	return app, nil
}

// Loop returns the application's task loop.
func (app *Application) Loop() *sched.Loop { return app.loop }

// Device returns the Device object.
func (app *Application) Device() *object.Object { return app.device }

// Add takes ownership of an object, indexing it by identifier and by name.
// An EventEnrollment resolves its references here; objects configured for
// intrinsic reporting get their algorithms attached. A failed enrollment
// leaves the object in service with reliability configurationError and
// returns the cause.
func (app *Application) Add(o *object.Object) error {
	id, name := o.ID(), o.Name()
	if _, ok := app.byID[id]; ok {
		return btype.ErrDuplicateObjectID
	}
	if name == "" {
		return btype.Error{Class: btype.ClassProperty, Code: btype.CodeInvalidDataType}
	}
	if _, ok := app.byName[name]; ok {
		return btype.ErrDuplicateName
	}

	app.byID[id] = o
	app.byName[name] = o
	app.order = append(app.order, id)
	o.Bind(app)

	if id.Type == btype.ObjectEventEnrollment {
		if err := app.enroll(o); err != nil {
			o.SetValue(btype.PropReliability, btype.ConfigurationError)
			app.log.WithField("object", id.String()).WithError(err).
				Error("event enrollment failed")
			return err
		}
		return nil
	}

	// on a NotificationClass the property is the class number, not an
	// intrinsic-reporting reference
	if id.Type != btype.ObjectNotificationClass && o.Has(btype.PropNotificationClass) {
		if err := app.attachIntrinsic(o); err != nil {
			o.SetValue(btype.PropReliability, btype.ConfigurationError)
			app.log.WithField("object", id.String()).WithError(err).
				Error("intrinsic reporting setup failed")
			return err
		}
	}
	return nil
}

// Remove releases an object: its COV subscriptions cancel, its algorithms
// unbind, and both index entries go away.
func (app *Application) Remove(id btype.ObjectID) error {
	o, ok := app.byID[id]
	if !ok {
		return btype.ErrUnknownObject
	}

	if d, ok := app.detectors[id]; ok {
		d.release()
		delete(app.detectors, id)
	}
	if e, ok := app.events[id]; ok {
		e.release()
		delete(app.events, id)
	}
	if f, ok := app.faults[id]; ok {
		f.unbind()
		delete(app.faults, id)
	}

	delete(app.byID, id)
	delete(app.byName, o.Name())
	for i, have := range app.order {
		if have == id {
			app.order = append(app.order[:i:i], app.order[i+1:]...)
			break
		}
	}
	return nil
}

// Object resolves an object by identifier, with nil for unknown.
func (app *Application) Object(id btype.ObjectID) *object.Object { return app.byID[id] }

// ObjectByName resolves an object by name, with nil for unknown.
func (app *Application) ObjectByName(name string) *object.Object { return app.byName[name] }

// ReadProperty dispatches a read to the addressed object.
func (app *Application) ReadProperty(id btype.ObjectID, prop btype.PropertyIdentifier, index *uint32) (btype.Value, error) {
	o, ok := app.byID[id]
	if !ok {
		return nil, btype.ErrUnknownObject
	}
	return o.ReadProperty(prop, index)
}

// WriteProperty dispatches a write to the addressed object.
func (app *Application) WriteProperty(id btype.ObjectID, prop btype.PropertyIdentifier, v btype.Value, index *uint32, priority *uint8) error {
	o, ok := app.byID[id]
	if !ok {
		return btype.ErrUnknownObject
	}
	return o.WriteProperty(prop, v, index, priority)
}

// AlarmSummaryEntry is one row of the GetAlarmSummary service result.
type AlarmSummaryEntry struct {
	ObjectID         btype.ObjectID
	EventState       btype.EventState
	AckedTransitions btype.EventTransitionBits
}

// AlarmSummary lists the objects in an alarm state with event reporting
// enabled, in insertion order.
func (app *Application) AlarmSummary() []AlarmSummaryEntry {
	var summary []AlarmSummaryEntry
	for _, id := range app.order {
		o := app.byID[id]
		state, ok := o.Value(btype.PropEventState).(btype.EventState)
		if !ok || state == btype.StateNormal {
			continue
		}
		enable, ok := o.Value(btype.PropEventEnable).(btype.EventTransitionBits)
		if !ok {
			continue
		}
		if !enable.ToOffnormal && !enable.ToFault && !enable.ToNormal {
			continue
		}
		acked, _ := o.Value(btype.PropAckedTransitions).(btype.EventTransitionBits)
		summary = append(summary, AlarmSummaryEntry{
			ObjectID:         id,
			EventState:       state,
			AckedTransitions: acked,
		})
	}
	return summary
}

// notificationClassNumbered resolves the NotificationClass object whose
// notificationClass property matches.
func (app *Application) notificationClassNumbered(n uint64) *object.Object {
	for _, id := range app.order {
		if id.Type != btype.ObjectNotificationClass {
			continue
		}
		o := app.byID[id]
		if have, ok := o.Value(btype.PropNotificationClass).(uint64); ok && have == n {
			return o
		}
	}
	return nil
}

// send hands a request to the service layer. A confirmed request suspends
// the loop until acknowledged, which is the cooperative model's suspension
// point for notification transactions. Delivery failures are protocol-level
// transients: logged, never propagated, nothing retried here.
func (app *Application) send(dst btype.Address, req apdu.Request, log logrus.FieldLogger) {
	if app.sender == nil {
		log.Debug("no sender configured, notification dropped")
		return
	}
	if err := app.sender.Send(context.Background(), dst, req); err != nil {
		log.WithError(err).Warn("notification delivery failed")
	}
}

// ObjectRenamed implements the object.AppLink interface.
func (app *Application) ObjectRenamed(o *object.Object, oldName, newName string) error {
	if _, ok := app.byName[newName]; ok {
		return btype.ErrDuplicateName
	}
	delete(app.byName, oldName)
	app.byName[newName] = o
	return nil
}

// ObjectReidentified implements the object.AppLink interface.
func (app *Application) ObjectReidentified(o *object.Object, oldID, newID btype.ObjectID) error {
	if _, ok := app.byID[newID]; ok {
		return btype.ErrDuplicateObjectID
	}
	delete(app.byID, oldID)
	app.byID[newID] = o
	for i, have := range app.order {
		if have == oldID {
			app.order[i] = newID
			break
		}
	}
	if d, ok := app.detectors[oldID]; ok {
		delete(app.detectors, oldID)
		app.detectors[newID] = d
	}
	if e, ok := app.events[oldID]; ok {
		delete(app.events, oldID)
		app.events[newID] = e
	}
	if f, ok := app.faults[oldID]; ok {
		delete(app.faults, oldID)
		app.faults[newID] = f
	}
	return nil
}

// ObjectIDs implements the object.AppLink interface.
func (app *Application) ObjectIDs() []btype.ObjectID {
	return append([]btype.ObjectID(nil), app.order...)
}

// LocalTime implements the object.AppLink interface.
func (app *Application) LocalTime() time.Time { return app.loop.Now() }
