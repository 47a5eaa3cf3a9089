package postaddr

// genericFormat is used for countries without a dedicated format: a city
// line and a postal code, neither of them checked.
type genericFormat struct {
	baseVariant
}

var genericVariant = &genericFormat{baseVariant{
	layout: []Field{FieldCity, FieldPostalCode},
}}
