package catalog

func fixtureEvents() []Event {
	return []Event{
		{
			ID:        "1",
			Title:     "Annual Tech Conference",
			Date:      "2024-09-15",
			Time:      "09:00 AM",
			Location:  "San Francisco Convention Center",
			Image:     "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?q=80&w=2000&auto=format&fit=crop",
			Attendees: 250,
			Organizer: Organizer{Name: "Tech Innovations Inc", Avatar: "https://randomuser.me/api/portraits/men/32.jpg"},
		},
		{
			ID:        "2",
			Title:     "Community Networking Mixer",
			Date:      "2024-07-22",
			Time:      "06:30 PM",
			Location:  "Downtown Workspace Hub",
			Image:     "https://images.unsplash.com/photo-1540317580384-e5d43867caa6?q=80&w=2000&auto=format&fit=crop",
			Attendees: 85,
			Organizer: Organizer{Name: "Professional Network Group", Avatar: "https://randomuser.me/api/portraits/women/44.jpg"},
		},
		{
			ID:        "3",
			Title:     "Design Workshop Series",
			Date:      "2024-08-05",
			Time:      "10:00 AM",
			Location:  "Creative Arts Center",
			Image:     "https://images.unsplash.com/photo-1561489396-888724a1543d?q=80&w=2000&auto=format&fit=crop",
			Attendees: 40,
			Organizer: Organizer{Name: "DesignLab", Avatar: "https://randomuser.me/api/portraits/men/75.jpg"},
		},
		{
			ID:        "4",
			Title:     "Startup Pitch Night",
			Date:      "2024-06-18",
			Time:      "07:00 PM",
			Location:  "Innovation Hub",
			Image:     "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?q=80&w=2000&auto=format&fit=crop",
			Attendees: 120,
			Organizer: Organizer{Name: "Venture Connect", Avatar: "https://randomuser.me/api/portraits/women/68.jpg"},
		},
		{
			ID:        "5",
			Title:     "Music in the Park",
			Date:      "2024-07-08",
			Time:      "05:00 PM",
			Location:  "Central Park Amphitheater",
			Image:     "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?q=80&w=2000&auto=format&fit=crop",
			Attendees: 300,
			Organizer: Organizer{Name: "City Events Committee", Avatar: "https://randomuser.me/api/portraits/men/45.jpg"},
		},
		{
			ID:        "6",
			Title:     "Product Management Summit",
			Date:      "2024-10-12",
			Time:      "09:30 AM",
			Location:  "Business Convention Center",
			Image:     "https://images.unsplash.com/photo-1557804506-669a67965ba0?q=80&w=2000&auto=format&fit=crop",
			Attendees: 175,
			Organizer: Organizer{Name: "PM Collective", Avatar: "https://randomuser.me/api/portraits/women/22.jpg"},
		},
	}
}

func fixtureAttendees() []Attendee {
	return []Attendee{
		{ID: "1", Name: "John Smith", Email: "john.smith@example.com", Avatar: "https://randomuser.me/api/portraits/men/1.jpg", Status: RSVPAttending},
		{ID: "2", Name: "Emily Johnson", Email: "emily.johnson@example.com", Avatar: "https://randomuser.me/api/portraits/women/2.jpg", Status: RSVPAttending},
		{ID: "3", Name: "Michael Brown", Email: "michael.brown@example.com", Avatar: "https://randomuser.me/api/portraits/men/3.jpg", Status: RSVPPending},
		{ID: "4", Name: "Sarah Wilson", Email: "sarah.wilson@example.com", Avatar: "https://randomuser.me/api/portraits/women/4.jpg", Status: RSVPDeclined},
		{ID: "5", Name: "David Lee", Email: "david.lee@example.com", Avatar: "https://randomuser.me/api/portraits/men/5.jpg", Status: RSVPAttending},
		{ID: "6", Name: "Amanda Martinez", Email: "amanda.martinez@example.com", Avatar: "https://randomuser.me/api/portraits/women/6.jpg", Status: RSVPAttending},
		{ID: "7", Name: "Robert Taylor", Email: "robert.taylor@example.com", Avatar: "https://randomuser.me/api/portraits/men/7.jpg", Status: RSVPPending},
		{ID: "8", Name: "Jennifer Garcia", Email: "jennifer.garcia@example.com", Avatar: "https://randomuser.me/api/portraits/women/8.jpg", Status: RSVPPending},
		{ID: "9", Name: "Thomas Rodriguez", Email: "thomas.rodriguez@example.com", Avatar: "https://randomuser.me/api/portraits/men/9.jpg", Status: RSVPDeclined},
	}
}

func fixtureVenues() []Venue {
	return []Venue{
		{ID: "1", Name: "Central Park Conference Center", Address: "123 Park Avenue, New York, NY", Capacity: 150},
		{ID: "2", Name: "Waterfront Hotel & Convention", Address: "456 Bay Street, San Francisco, CA", Capacity: 300},
		{ID: "3", Name: "Highland Event Space", Address: "789 Mountain View, Denver, CO", Capacity: 100},
		{ID: "4", Name: "Skyline Downtown Loft", Address: "210 Main Street, Chicago, IL", Capacity: 80},
	}
}

// aboutText is the description shown on every event detail page.
const aboutText = `Join us for an exciting event featuring **industry experts**, networking
opportunities, and engaging discussions. This event is designed to bring together
professionals from various backgrounds to share insights and explore new possibilities.`

// ScheduleItem is one row of an event's agenda.
type ScheduleItem struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

func fixtureSchedule() []ScheduleItem {
	return []ScheduleItem{
		{Time: "09:00 AM", Title: "Registration & Coffee"},
		{Time: "10:00 AM", Title: "Opening Keynote"},
		{Time: "12:00 PM", Title: "Networking Lunch"},
		{Time: "02:00 PM", Title: "Workshop Sessions"},
		{Time: "04:30 PM", Title: "Closing Remarks"},
	}
}

// About returns the markdown description shown for an event.
func (c *Catalog) About(Event) string {
	return aboutText
}

// Schedule returns the agenda shown for an event.
func (c *Catalog) Schedule(Event) []ScheduleItem {
	return fixtureSchedule()
}

// StreetAddress returns the street address shown on an event's location tab.
func (c *Catalog) StreetAddress(Event) string {
	return "123 Main Street, Suite 200, San Francisco, CA 94105"
}
