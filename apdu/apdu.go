// Package apdu defines the application-layer protocol data units which the
// core exchanges with the service layer, plus the sender contract. The core
// produces pre-built request values; segmentation, transaction state and
// retries belong to the service layer behind the Sender interface.
package apdu

import (
	"context"

	"github.com/wvanheerde/bacstack/btype"
)

// Service choices from clause 21, for the requests the core initiates.
const (
	ServiceConfirmedCOVNotification     uint8 = 1
	ServiceConfirmedEventNotification   uint8 = 2
	ServiceUnconfirmedCOVNotification   uint8 = 2
	ServiceUnconfirmedEventNotification uint8 = 3
)

// A Request is one of the notification requests below.
type Request interface {
	// Service returns the service choice, with whether the request wants
	// a confirmed transaction.
	Service() (choice uint8, confirmed bool)

	// EncodeTags appends the service-request production to the list.
	EncodeTags(l *btype.TagList) error
}

// The Sender is the external service-layer collaborator. A confirmed
// request returns once acknowledged, or with the error of the transaction
// (reject, abort, timeout). An unconfirmed request returns once submitted.
type Sender interface {
	Send(ctx context.Context, destination btype.Address, req Request) error
}

// COVNotification is the shared payload of both COV notification requests.
type COVNotification struct {
	SubscriberProcessIdentifier uint64
	InitiatingDeviceIdentifier  btype.ObjectID
	MonitoredObjectIdentifier   btype.ObjectID
	TimeRemaining               uint64
	ListOfValues                []btype.PropertyValue
}

// EncodeTags appends the service-request production, conform clause 13.11.
func (n *COVNotification) EncodeTags(l *btype.TagList) error {
	l.Append(ctxUint(0, n.SubscriberProcessIdentifier))
	id, err := objectIDTag(1, n.InitiatingDeviceIdentifier)
	if err != nil {
		return err
	}
	l.Append(id)
	id, err = objectIDTag(2, n.MonitoredObjectIdentifier)
	if err != nil {
		return err
	}
	l.Append(id)
	l.Append(ctxUint(3, n.TimeRemaining))

	l.Append(btype.Tag{Class: btype.OpeningTag, Number: 4})
	for _, pv := range n.ListOfValues {
		if err := btype.PropertyValueType.Encode(pv, l); err != nil {
			return err
		}
	}
	l.Append(btype.Tag{Class: btype.ClosingTag, Number: 4})
	return nil
}

// ConfirmedCOVNotificationRequest asks the subscriber to acknowledge.
type ConfirmedCOVNotificationRequest struct{ COVNotification }

// Service implements the Request interface.
func (*ConfirmedCOVNotificationRequest) Service() (uint8, bool) {
	return ServiceConfirmedCOVNotification, true
}

// UnconfirmedCOVNotificationRequest is fire-and-forget.
type UnconfirmedCOVNotificationRequest struct{ COVNotification }

// Service implements the Request interface.
func (*UnconfirmedCOVNotificationRequest) Service() (uint8, bool) {
	return ServiceUnconfirmedCOVNotification, false
}

// EventNotification is the shared payload of both event notification
// requests, conform clause 13.8.
type EventNotification struct {
	ProcessIdentifier          uint64
	InitiatingDeviceIdentifier btype.ObjectID
	EventObjectIdentifier      btype.ObjectID
	TimeStamp                  btype.TimeStamp
	NotificationClass          uint64
	Priority                   uint8
	EventType                  btype.EventType
	MessageText                *string
	NotifyType                 btype.NotifyType
	AckRequired                *bool
	FromState                  *btype.EventState
	ToState                    btype.EventState

	// EventValues holds the notification-parameters choice, absent on
	// ack-notifications.
	EventValues btype.Value
}

// EncodeTags appends the service-request production.
func (n *EventNotification) EncodeTags(l *btype.TagList) error {
	l.Append(ctxUint(0, n.ProcessIdentifier))
	id, err := objectIDTag(1, n.InitiatingDeviceIdentifier)
	if err != nil {
		return err
	}
	l.Append(id)
	id, err = objectIDTag(2, n.EventObjectIdentifier)
	if err != nil {
		return err
	}
	l.Append(id)

	l.Append(btype.Tag{Class: btype.OpeningTag, Number: 3})
	if err := btype.TimeStampType.Encode(n.TimeStamp, l); err != nil {
		return err
	}
	l.Append(btype.Tag{Class: btype.ClosingTag, Number: 3})

	l.Append(ctxUint(4, n.NotificationClass))
	l.Append(ctxUint(5, uint64(n.Priority)))
	l.Append(ctxUint(6, uint64(n.EventType)))

	if n.MessageText != nil {
		l.Append(btype.Tag{Class: btype.ContextTag, Number: 7,
			Data: append([]byte{0}, *n.MessageText...)})
	}
	l.Append(ctxUint(8, uint64(n.NotifyType)))
	if n.AckRequired != nil {
		data := []byte{0}
		if *n.AckRequired {
			data[0] = 1
		}
		l.Append(btype.Tag{Class: btype.ContextTag, Number: 9, Data: data})
	}
	if n.FromState != nil {
		l.Append(ctxUint(10, uint64(*n.FromState)))
	}
	l.Append(ctxUint(11, uint64(n.ToState)))

	if n.EventValues != nil {
		l.Append(btype.Tag{Class: btype.OpeningTag, Number: 12})
		if err := btype.NotificationParametersType.Encode(n.EventValues, l); err != nil {
			return err
		}
		l.Append(btype.Tag{Class: btype.ClosingTag, Number: 12})
	}
	return nil
}

// ConfirmedEventNotificationRequest asks the recipient to acknowledge.
type ConfirmedEventNotificationRequest struct{ EventNotification }

// Service implements the Request interface.
func (*ConfirmedEventNotificationRequest) Service() (uint8, bool) {
	return ServiceConfirmedEventNotification, true
}

// UnconfirmedEventNotificationRequest is fire-and-forget.
type UnconfirmedEventNotificationRequest struct{ EventNotification }

// Service implements the Request interface.
func (*UnconfirmedEventNotificationRequest) Service() (uint8, bool) {
	return ServiceUnconfirmedEventNotification, false
}

func ctxUint(number uint8, v uint64) btype.Tag {
	size := 1
	for n := v >> 8; n != 0; n >>= 8 {
		size++
	}
	data := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		data[i] = byte(v)
		v >>= 8
	}
	return btype.Tag{Class: btype.ContextTag, Number: number, Data: data}
}

func objectIDTag(number uint8, id btype.ObjectID) (btype.Tag, error) {
	l := new(btype.TagList)
	if err := btype.ObjectIDType.Encode(id, l); err != nil {
		return btype.Tag{}, err
	}
	t := l.Tags()[0]
	t.Class = btype.ContextTag
	t.Number = number
	return t, nil
}
