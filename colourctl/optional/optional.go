package optional

// Optional separates "not set" from a zero value when layering settings.
type Optional[Value any] struct {
	value *Value
	Valid bool
}

func WithValue[Value any](val *Value) Optional[Value] {
	if val != nil {
		return Optional[Value]{
			value: val,
			Valid: true,
		}
	} else {
		return Optional[Value]{}
	}
}

func (o Optional[Value]) Get() (Value, bool) {
	if !o.Valid {
		var zero Value
		return zero, false
	}
	return *o.value, true
}

// OrElse returns the held value, or def when none is set.
func (o Optional[Value]) OrElse(def Value) Value {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}
