package parse

import (
	"chronoical/icaldur"
	"chronoical/model"
)

// parseOrganizer converts an ORGANIZER property into a typed Organizer.
// The calendar user address itself is a CAL-ADDRESS value; CN, DIR, and
// SENT-BY ride along as parameters.
func parseOrganizer(p model.RawProperty) (*model.Organizer, error) {
	address, err := icaldur.ParseCalAddress(p.Value, p.Params)
	if err != nil {
		return nil, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
	}
	return &model.Organizer{
		CommonName: p.Params["CN"],
		Address:    address,
		Directory:  p.Params["DIR"],
		SentBy:     p.Params["SENT-BY"],
	}, nil
}

// parseAttendee converts an ATTENDEE property into a typed CalAddress.
func parseAttendee(p model.RawProperty) (icaldur.CalAddress, error) {
	address, err := icaldur.ParseCalAddress(p.Value, p.Params)
	if err != nil {
		return icaldur.CalAddress{}, &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
	}
	return address, nil
}
