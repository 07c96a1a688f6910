package object

import (
	"github.com/wvanheerde/bacstack/btype"
)

// Snapshot projects the object onto a JSON dictionary: property identifier
// names as keys, canonical JSON forms as values. Restore reverses the
// projection for all non-computed properties.
func Snapshot(o *Object) map[string]any {
	snap := make(map[string]any)
	for i := range o.class.Properties {
		p := &o.class.Properties[i]
		v, err := o.resolve(p.ID)
		if err != nil {
			continue
		}
		snap[p.ID.String()] = btype.ToJSON(v)
	}
	return snap
}

// Restore applies a Snapshot dictionary through the normal write path.
// Computed properties like propertyList round-trip without error because
// their writes are silently ignored. Unknown keys fail with
// unknownProperty.
func Restore(o *Object, snap map[string]any) error {
	for key, raw := range snap {
		id, ok := btype.Properties.ValueOf(key)
		if !ok {
			return btype.ErrUnknownProperty
		}
		switch id {
		case btype.PropObjectIdentifier, btype.PropObjectType:
			continue // fixed at construction
		}

		p := o.class.Property(id)
		if p == nil {
			return btype.ErrUnknownProperty
		}
		if _, ok := o.accessors[id]; ok {
			continue // computed
		}
		switch id {
		case btype.PropPropertyList, btype.PropStatusFlags:
			continue // computed
		}

		v, err := btype.FromJSON(p.Type, raw)
		if err != nil {
			return err
		}
		if id == btype.PropObjectName {
			// through the rename path, so an owning application
			// keeps its name index consistent
			if err := o.WriteProperty(id, v, nil, nil); err != nil {
				return err
			}
			continue
		}
		if o.class.Commandable && id == btype.PropPriorityArray {
			if err := o.commandArray(v); err != nil {
				return err
			}
			continue
		}
		if err := o.set(id, v); err != nil {
			return err
		}
	}
	return nil
}
