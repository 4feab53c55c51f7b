package icaldur

import (
	"net/url"
	"strings"
)

// Default parameter values for CAL-ADDRESS, per RFC 5545 section 3.2.
const (
	CUTypeIndividual    = "INDIVIDUAL"
	RoleReqParticipant  = "REQ-PARTICIPANT"
	PartStatNeedsAction = "NEEDS-ACTION"
)

// CalAddress is a typed CAL-ADDRESS value (ORGANIZER, ATTENDEE).
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.3
type CalAddress struct {
	// URI is the raw calendar user address, e.g. "mailto:jane@example.com".
	URI *url.URL
	// Email is the suffix after "mailto:" when the URI uses that scheme.
	Email string

	// CN is the CN= parameter: a human-readable common name.
	CN string
	// CUType is the CUTYPE= parameter, default INDIVIDUAL.
	CUType string
	// Member lists the MEMBER= parameter's group memberships.
	Member []string
	// Role is the ROLE= parameter, default REQ-PARTICIPANT.
	Role string
	// PartStat is the PARTSTAT= parameter, default NEEDS-ACTION.
	PartStat string
}

// ParseCalAddress parses a CAL-ADDRESS property value plus its parameters.
func ParseCalAddress(value string, params map[string]string) (CalAddress, error) {
	u, err := url.Parse(value)
	if err != nil {
		return CalAddress{}, err
	}

	addr := CalAddress{
		URI:      u,
		CN:       params["CN"],
		CUType:   CUTypeIndividual,
		Role:     RoleReqParticipant,
		PartStat: PartStatNeedsAction,
	}
	if cuType, ok := params["CUTYPE"]; ok {
		addr.CUType = cuType
	}
	if role, ok := params["ROLE"]; ok {
		addr.Role = role
	}
	if partStat, ok := params["PARTSTAT"]; ok {
		addr.PartStat = partStat
	}
	if member, ok := params["MEMBER"]; ok {
		addr.Member = strings.Split(member, ",")
	}
	if email, ok := strings.CutPrefix(strings.ToLower(value), "mailto:"); ok {
		addr.Email = value[len(value)-len(email):]
	}
	return addr, nil
}
