package predicate

// String is a string-valued property that provides type-safe predicate
// builders. Declaring properties as package-level constants keeps call
// sites short:
//
//	var Lastname = predicate.String("lastname")
//	p := predicate.NewAnd(Lastname.EQ("Smith"), Firstname.Contains("oh"))
//
// Builders produce exactly the tree shapes the descriptor parser produces,
// so a typed expression and an equivalent method-name descriptor compile
// to byte-identical filters.
type String string

// Name returns the property name.
func (f String) Name() string { return string(f) }

// EQ matches properties equal to v.
func (f String) EQ(v string) *P {
	return NewComparison(string(f), OpEq, v)
}

// Not matches properties not equal to v.
func (f String) Not(v string) *P {
	return NewNot(NewComparison(string(f), OpEq, v))
}

// LTE matches properties ordered at or below v.
func (f String) LTE(v string) *P {
	return NewComparison(string(f), OpLTE, v)
}

// GTE matches properties ordered at or above v.
func (f String) GTE(v string) *P {
	return NewComparison(string(f), OpGTE, v)
}

// Like matches v literally, keeping any caller-supplied wildcards.
func (f String) Like(v string) *P {
	return NewComparison(string(f), OpLike, v)
}

// NotLike matches properties that do not start with v. The negated prefix
// shape mirrors the NotLike descriptor keyword.
func (f String) NotLike(v string) *P {
	return NewNot(NewComparison(string(f), OpHasPrefix, v))
}

// HasPrefix matches properties starting with v.
func (f String) HasPrefix(v string) *P {
	return NewComparison(string(f), OpHasPrefix, v)
}

// HasSuffix matches properties ending with v.
func (f String) HasSuffix(v string) *P {
	return NewComparison(string(f), OpHasSuffix, v)
}

// Contains matches properties containing v.
func (f String) Contains(v string) *P {
	return NewComparison(string(f), OpContains, v)
}

// IsNotNull matches entries that carry the property at all.
func (f String) IsNotNull() *P {
	return NewComparison(string(f), OpPresent, nil)
}

// IsNull matches entries that do not carry the property.
func (f String) IsNull() *P {
	return NewComparison(string(f), OpAbsent, nil)
}

// Int is an integer-valued property that provides type-safe predicate
// builders.
type Int string

// Name returns the property name.
func (f Int) Name() string { return string(f) }

// EQ matches properties equal to v.
func (f Int) EQ(v int) *P {
	return NewComparison(string(f), OpEq, v)
}

// Not matches properties not equal to v.
func (f Int) Not(v int) *P {
	return NewNot(NewComparison(string(f), OpEq, v))
}

// LTE matches properties at or below v.
func (f Int) LTE(v int) *P {
	return NewComparison(string(f), OpLTE, v)
}

// GTE matches properties at or above v.
func (f Int) GTE(v int) *P {
	return NewComparison(string(f), OpGTE, v)
}

// IsNotNull matches entries that carry the property at all.
func (f Int) IsNotNull() *P {
	return NewComparison(string(f), OpPresent, nil)
}

// IsNull matches entries that do not carry the property.
func (f Int) IsNull() *P {
	return NewComparison(string(f), OpAbsent, nil)
}

// Bool is a boolean-valued property that provides type-safe predicate
// builders.
type Bool string

// Name returns the property name.
func (f Bool) Name() string { return string(f) }

// EQ matches properties equal to v.
func (f Bool) EQ(v bool) *P {
	return NewComparison(string(f), OpEq, v)
}

// Not matches properties not equal to v.
func (f Bool) Not(v bool) *P {
	return NewNot(NewComparison(string(f), OpEq, v))
}

// IsNotNull matches entries that carry the property at all.
func (f Bool) IsNotNull() *P {
	return NewComparison(string(f), OpPresent, nil)
}

// IsNull matches entries that do not carry the property.
func (f Bool) IsNull() *P {
	return NewComparison(string(f), OpAbsent, nil)
}
