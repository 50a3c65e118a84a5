package booking

// dateLayout is the calendar-date wire format used across the API.
const dateLayout = "2006-01-02"

// MasterSlots is the fixed daily slot enumeration. Every day offers the same
// twelve slots; availability is this list minus live bookings for the date.
var MasterSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	"05:00 PM", "06:00 PM", "07:00 PM", "08:00 PM",
}

// validSlot reports whether s appears in the master slot list.
func validSlot(s string) bool {
	for _, slot := range MasterSlots {
		if slot == s {
			return true
		}
	}
	return false
}
