// Package constants holds application-wide constant values.
package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Enum kinds that ticket fields resolve against.
const (
	EnumTypeTicketType = "ticket_type"
	EnumTypeResolution = "resolution"
)

// Ticket fields tracked in the change history.
const (
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldSeverity    = "severity"
	FieldPriority    = "priority"
	FieldOwner       = "owner"
	FieldReporter    = "reporter"
	FieldCC          = "cc"
	FieldKeywords    = "keywords"
	FieldType        = "type"
	FieldResolution  = "resolution"
	FieldComponent   = "component"
	FieldMilestone   = "milestone"
	FieldVersion     = "version"
)
