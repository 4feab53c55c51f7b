package parse

import (
	"strings"

	"chronoical/model"
	"chronoical/rrule"
)

const journalLocation = "VJOURNAL"

// buildJournal projects one VJOURNAL raw component onto a typed Journal.
func (c *converter) buildJournal(comp *model.RawComponent) (model.Journal, error) {
	var journal model.Journal
	for _, p := range comp.Properties {
		if err := c.setJournalProperty(p, &journal); err != nil {
			return model.Journal{}, err
		}
	}
	return journal, nil
}

// setJournalProperty parses a single property line and sets its value in the provided vjournal.
func (c *converter) setJournalProperty(p model.RawProperty, journal *model.Journal) error {
	switch model.JournalToken(p.Name) {
	case model.JournalTokenDTStart:
		start, err := c.parseTime(p)
		if err != nil {
			return err
		}
		setSingle(&journal.DTStart, start, p.Name, journalLocation)

	case model.JournalTokenDTStamp:
		return setSingleUTCTime(&journal.DTStamp, p.Value, p.Name, journalLocation)
	case model.JournalTokenCreated:
		return setSingleUTCTime(&journal.Created, p.Value, p.Name, journalLocation)
	case model.JournalTokenLastModified:
		return setSingleUTCTime(&journal.LastModified, p.Value, p.Name, journalLocation)

	case model.JournalTokenUID:
		setSingle(&journal.UID, p.Value, p.Name, journalLocation)
	case model.JournalTokenClass:
		setSingle(&journal.Class, model.JournalClass(p.Value), p.Name, journalLocation)
	case model.JournalTokenStatus:
		setSingle(&journal.Status, model.JournalStatus(p.Value), p.Name, journalLocation)
	case model.JournalTokenSummary:
		setSingle(&journal.Summary, p.Value, p.Name, journalLocation)
	case model.JournalTokenURL:
		setSingle(&journal.URL, p.Value, p.Name, journalLocation)
	case model.JournalTokenSequence:
		return setSingleInt(&journal.Sequence, p.Value, p.Name, journalLocation)

	case model.JournalTokenOrganizer:
		organizer, err := parseOrganizer(p)
		if err != nil {
			return err
		}
		journal.Organizer = organizer
	case model.JournalTokenAttendee:
		attendee, err := parseAttendee(p)
		if err != nil {
			return err
		}
		journal.Attendees = append(journal.Attendees, attendee)

	// Repeatable properties. A journal may carry several DESCRIPTION
	// lines, unlike VEVENT.
	case model.JournalTokenDescription:
		journal.Description = append(journal.Description, p.Value)
	case model.JournalTokenAttach:
		journal.Attach = append(journal.Attach, p.Value)
	case model.JournalTokenCategories:
		journal.Categories = append(journal.Categories, strings.Split(p.Value, ",")...)
	case model.JournalTokenComment:
		journal.Comment = append(journal.Comment, p.Value)
	case model.JournalTokenContact:
		journal.Contacts = append(journal.Contacts, p.Value)
	case model.JournalTokenRelated:
		journal.Related = append(journal.Related, p.Value)
	case model.JournalTokenRequestStatus:
		journal.RequestStatus = append(journal.RequestStatus, p.Value)

	// Recurrence.
	case model.JournalTokenRRule:
		parsed, err := rrule.ParseRRule(p.Value)
		if err != nil {
			return &model.InvalidValueError{Property: p.Name, Value: p.Value, Err: err}
		}
		setSingle(&journal.RRule, parsed, p.Name, journalLocation)
	case model.JournalTokenRdate:
		entries, err := c.parseRecurEntries(p)
		if err != nil {
			return err
		}
		journal.RDates = append(journal.RDates, entries...)
	case model.JournalTokenExceptionDates:
		instants, err := c.parseTimeList(p)
		if err != nil {
			return err
		}
		journal.ExDates = append(journal.ExDates, instants...)
	case model.JournalTokenRecurrenceID:
		instant, err := c.parseTime(p)
		if err != nil {
			return err
		}
		journal.RecurrenceID = &instant

	default:
		addExtra(&journal.Extras, p)
	}
	return nil
}
