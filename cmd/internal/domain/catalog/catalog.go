// Package catalog holds the salon's static configuration: the daily
// time-slot grid and the services on offer. Nothing here is persisted;
// both sets are immutable and shared read-only across requests.
package catalog

// TimeSlots is the full set of bookable half-hour slots, in
// chronological order: a morning window (09:00-11:30) and an
// afternoon window (14:00-17:30).
var TimeSlots = []string{
	"09:00",
	"09:30",
	"10:00",
	"10:30",
	"11:00",
	"11:30",
	"14:00",
	"14:30",
	"15:00",
	"15:30",
	"16:00",
	"16:30",
	"17:00",
	"17:30",
}

type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
}

var Services = []Service{
	{ID: "manicure", Name: "Manicure Clássica", Price: "R$ 35", Duration: "45 min"},
	{ID: "gel", Name: "Esmaltação em Gel", Price: "R$ 55", Duration: "60 min"},
	{ID: "nailart", Name: "Nail Art", Price: "R$ 80", Duration: "90 min"},
	{ID: "alongamento", Name: "Alongamento", Price: "R$ 120", Duration: "120 min"},
	{ID: "pedicure", Name: "Pedicure Spa", Price: "R$ 65", Duration: "75 min"},
	{ID: "blindagem", Name: "Blindagem das Unhas", Price: "R$ 45", Duration: "50 min"},
}

func IsTimeSlot(hhmm string) bool {
	for _, slot := range TimeSlots {
		if slot == hhmm {
			return true
		}
	}
	return false
}

func FindService(id string) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
