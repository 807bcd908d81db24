package constants

// DateLayout is the canonical calendar-date layout for profile date fields.
const DateLayout = "2006-01-02"

// PresentSentinel marks an ongoing role or program; it is a valid value for
// any end-date field and is never parsed as a calendar date.
const PresentSentinel = "Present"
