package holidays

import "time"

// colombiaRules are the Colombian public holidays.
// https://es.wikipedia.org/wiki/Anexo:D%C3%ADas_festivos_en_Colombia
var colombiaRules = []Rule{
	// Fixed-date holidays. New Year's Day, Independence Day and the
	// Immaculate Conception are not recognized in years where they fall on
	// a weekend; without observed mode there are 18 holidays.
	{Name: "Año Nuevo [New Year's Day]", Month: time.January, Day: 1, Policy: DropOnWeekend},
	{Name: "Día del Trabajo [Labour Day]", Month: time.May, Day: 1},
	{Name: "Día de la Independencia [Independence Day]", Month: time.July, Day: 20, Policy: DropOnWeekend},
	{Name: "Batalla de Boyacá [Battle of Boyacá]", Month: time.August, Day: 7},
	{Name: "La Inmaculada Concepción [Immaculate Conception]", Month: time.December, Day: 8, Policy: DropOnWeekend},
	{Name: "Navidad [Christmas]", Month: time.December, Day: 25},

	// Emiliani Law holidays. Unless they fall on a Monday they are observed
	// the following Monday.
	{Name: "Día de los Reyes Magos [Epiphany]", Month: time.January, Day: 6, Policy: MoveToMonday},
	{Name: "Día de San José [Saint Joseph's Day]", Month: time.March, Day: 19, Policy: MoveToMonday},
	{Name: "San Pedro y San Pablo [Saint Peter and Saint Paul]", Month: time.June, Day: 29, Policy: MoveToMonday},
	{Name: "La Asunción [Assumption of Mary]", Month: time.August, Day: 15, Policy: MoveToMonday},
	{Name: "Descubrimiento de América [Discovery of America]", Month: time.October, Day: 12, Policy: MoveToMonday},
	{Name: "Dia de Todos los Santos [All Saint's Day]", Month: time.November, Day: 1, Policy: MoveToMonday},
	{Name: "Independencia de Cartagena [Independence of Cartagena]", Month: time.November, Day: 11, Policy: MoveToMonday},

	// Holidays based on Easter.
	{Name: "Jueves Santo [Maundy Thursday]", Basis: WeekdayBeforeEaster, Weekday: time.Thursday},
	{Name: "Viernes Santo [Good Friday]", Basis: WeekdayBeforeEaster, Weekday: time.Friday},

	// Holidays based on Easter that follow the Emiliani Law.
	{Name: "Ascensión del señor [Ascension of Jesus]", Basis: EasterOffset, Days: 39, Policy: MoveToMonday},
	{Name: "Corpus Christi [Corpus Christi]", Basis: EasterOffset, Days: 60, Policy: MoveToMonday},
	{Name: "Sagrado Corazón [Sacred Heart]", Basis: EasterOffset, Days: 68, Policy: MoveToMonday},
}

// colombia is the Colombian ruleset.
type colombia struct{}

func (colombia) Code() string { return "CO" }

func (colombia) Populate(c *Calendar, year int) {
	c.applyRules(colombiaRules, year)
}

// CO builds a Colombian holiday calendar.
func CO(opts ...Option) *Calendar {
	return New(colombia{}, opts...)
}

func init() {
	Register("CO", CO)
	Register("Colombia", CO)
}
