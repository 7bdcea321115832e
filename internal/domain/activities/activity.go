// Package activities holds the static Playo lookup data: the sports that can
// be searched, the timing slot ids and the skill level ids the public
// activity API understands.
package activities

type Sport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Key  string `json:"key"`
}

type TimingSlot struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
	Key  string `json:"key"`
	Time string `json:"time"`
}

type SkillLevel struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
	Key  string `json:"key"`
}

var Sports = []Sport{
	{Name: "Badminton", ID: "SP5", Key: "badminton"},
	{Name: "Football", ID: "SP2", Key: "football"},
}

var TimingSlots = []TimingSlot{
	{Name: "Morning", ID: 0, Key: "morning", Time: "12 AM to 9 AM"},
	{Name: "Day", ID: 1, Key: "day", Time: "9 AM to 4 PM"},
	{Name: "Evening", ID: 2, Key: "evening", Time: "4 PM to 9 PM"},
	{Name: "Night", ID: 3, Key: "night", Time: "9 PM to 12 PM"},
}

var SkillLevels = []SkillLevel{
	{Name: "Beginner", ID: 0, Key: "beginner"},
	{Name: "Amateur", ID: 1, Key: "amateur"},
	{Name: "Intermediate", ID: 2, Key: "intermediate"},
	{Name: "Advanced", ID: 3, Key: "advanced"},
	{Name: "Professional", ID: 4, Key: "professional"},
}
