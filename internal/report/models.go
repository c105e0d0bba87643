// Package report holds the validated activity-report model, the narrative
// composer and the document generation pipeline.
package report

// Report is the root value for one generation run. It is decoded once at
// the ingress boundary and read-only from there on; nothing in it is shared
// across concurrent runs.
type Report struct {
	GeneralInfo     GeneralInfo       `json:"general_info"`
	Legislation     []Legislation     `json:"legislation"`
	CitizenRequests CitizenRequests   `json:"citizen_requests"`
	SupportProjects SupportProjects   `json:"support_projects"`
	ProjectActivity []ProjectActivity `json:"project_activity"`
	Directives      []Directive       `json:"directives"`
	OtherInfo       string            `json:"other_info"`
}

// Attendance carries three (total, attended) pairs. Upstream encodes the
// counts as strings and may ship garbage; they are parsed defensively and
// attended ≤ total is deliberately not enforced.
type Attendance struct {
	PlenaryTotal      string `json:"total"`
	PlenaryAttended   string `json:"attended"`
	CommitteeTotal    string `json:"committee_total"`
	CommitteeAttended string `json:"committee_attended"`
	CaucusTotal       string `json:"caucus_total"`
	CaucusAttended    string `json:"caucus_attended"`
}

type GeneralInfo struct {
	FullName        string     `json:"full_name"`
	District        string     `json:"district"`
	TermStart       string     `json:"term_start"`
	TermEnd         string     `json:"term_end"`
	Links           []string   `json:"links"`
	Position        string     `json:"position"`
	FactionPosition string     `json:"faction_position"`
	Committees      []string   `json:"committees"`
	Attendance      Attendance `json:"sessions_attended"`
	Region          string     `json:"region"`
	AuthorityName   string     `json:"authority_name"`
}

// Statuses tallied by exact equality in the legislation section. The field
// itself is open-ended: unknown statuses render verbatim and simply stay
// out of the aggregate counts.
const (
	StatusSubmittedByInitiative = "внесен по инициативе"
	StatusSubmittedJointly      = "внесен совместно"
	StatusAdoptedByInitiative   = "принят по инициативе"
	StatusAdoptedJointly        = "принят совместно"
	StatusRejected              = "отклонен"
)

type Legislation struct {
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	Status          string   `json:"status"`
	RejectionReason string   `json:"rejection_reason"`
	Links           []string `json:"links"`
}

// RequestCounts is the fixed-vocabulary counter block. All values are
// count-as-text, zero on parse failure. Every key except
// AppealsToLeadership feeds the chart renderer.
type RequestCounts struct {
	Utilities                      string `json:"utilities"`
	PensionsAndSocialPayments      string `json:"pensions_and_social_payments"`
	Improvement                    string `json:"improvement"`
	Education                      string `json:"education"`
	SVO                            string `json:"svo"`
	RoadMaintenance                string `json:"road_maintenance"`
	Ecology                        string `json:"ecology"`
	MedicineAndHealthcare          string `json:"medicine_and_healthcare"`
	PublicTransport                string `json:"public_transport"`
	IllegalDumps                   string `json:"illegal_dumps"`
	AppealsToLeadership            string `json:"appeals_to_leadership"`
	LegalAidRequests               string `json:"legal_aid_requests"`
	IntegratedTerritoryDevelopment string `json:"integrated_territory_development"`
	StrayAnimalIssues              string `json:"stray_animal_issues"`
	LegislativeProposals           string `json:"legislative_proposals"`
}

// ChartCounts exposes the chartable counters keyed by their wire names.
func (r RequestCounts) ChartCounts() map[string]string {
	return map[string]string{
		"utilities":                        r.Utilities,
		"pensions_and_social_payments":     r.PensionsAndSocialPayments,
		"improvement":                      r.Improvement,
		"education":                        r.Education,
		"svo":                              r.SVO,
		"road_maintenance":                 r.RoadMaintenance,
		"ecology":                          r.Ecology,
		"medicine_and_healthcare":          r.MedicineAndHealthcare,
		"public_transport":                 r.PublicTransport,
		"illegal_dumps":                    r.IllegalDumps,
		"legal_aid_requests":               r.LegalAidRequests,
		"integrated_territory_development": r.IntegratedTerritoryDevelopment,
		"stray_animal_issues":              r.StrayAnimalIssues,
		"legislative_proposals":            r.LegislativeProposals,
	}
}

// Example is one free-text success story, optionally with links.
type Example struct {
	Text  string   `json:"text"`
	Links []string `json:"links"`
}

type CitizenRequests struct {
	PersonalMeetings string            `json:"personal_meetings"`
	Requests         RequestCounts     `json:"requests"`
	Responses        string            `json:"responses"`
	OfficialQueries  string            `json:"official_queries"`
	Examples         []Example         `json:"examples"`
	TotalRequests    string            `json:"total_requests"`
	DayReceptions    map[string]string `json:"day_receptions"`
}

type SupportProject struct {
	Name  string   `json:"name"`
	Links []string `json:"links"`
	Text  string   `json:"text"`
}

type SupportProjects struct {
	Projects []SupportProject `json:"projects"`
}

type ProjectActivity struct {
	Name   string `json:"name"`
	Result string `json:"result"`
}

type Directive struct {
	Instruction string `json:"instruction"`
	Action      string `json:"action"`
}
