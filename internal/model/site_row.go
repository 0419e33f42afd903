package model

// SiteRow mirrors one row of the street-team site sheet. Every column is optional
// free text; an empty string means the cell was absent or blank.
type SiteRow struct {
	ID                 string `parquet:"id,optional"`
	Nickname           string `parquet:"nickname,optional"`
	OfficialName       string `parquet:"officialName,optional"`
	ServiceCategory    string `parquet:"serviceCategory,optional"`
	ServicePopulation  string `parquet:"servicePopulation,optional"`
	EligibilitySummary string `parquet:"eligibilitySummary,optional"`
	Neighborhood       string `parquet:"neighborhood,optional"`
	ServiceRegion      string `parquet:"serviceRegion,optional"`

	// Admission & security
	AdmissionType string `parquet:"admissionType,optional"`
	LockedStatus  string `parquet:"lockedStatus,optional"`
	DropIn        string `parquet:"dropIn,optional"`
	DropOff       string `parquet:"dropOff,optional"`

	// Referral & intake
	AcceptedFrom     string `parquet:"acceptedFrom,optional"`
	IntakeComplexity string `parquet:"intakeComplexity,optional"`
	MedicalClearance string `parquet:"medicalClearance,optional"`
	LengthOfStay     string `parquet:"lengthOfStay,optional"`

	// Transport
	TransportIn      string `parquet:"transportIn,optional"`
	TransportOut     string `parquet:"transportOut,optional"`
	TransportSupport string `parquet:"transportSupport,optional"`

	// Access & capacity
	ADAAccessible       string `parquet:"adaAccessible,optional"`
	CapacityConstraints string `parquet:"capacityConstraints,optional"`
	HoursIntake         string `parquet:"hoursIntake,optional"`
	HoursOperation      string `parquet:"hoursOperation,optional"`
	BedsDPH             string `parquet:"bedsDph,optional"`

	// Contact
	Contact        string `parquet:"contact,optional"`
	ProgramAddress string `parquet:"programAddress,optional"`

	// Checkmark columns: some sheet exports mark each accepted source with "x"
	// instead of (or in addition to) the pipe-delimited acceptedFrom list.
	AcceptsSelf        string `parquet:"acceptsSelf,optional"`
	AcceptsCommunity   string `parquet:"acceptsCommunity,optional"`
	AcceptsStreetTeams string `parquet:"acceptsStreetTeams,optional"`
	AcceptsPolice      string `parquet:"acceptsPolice,optional"`
	AcceptsEMS         string `parquet:"acceptsEms,optional"`
	AcceptsHospital    string `parquet:"acceptsHospital,optional"`
	AcceptsBHAC        string `parquet:"acceptsBhac,optional"`
}

// SiteColumns returns the header names of every known column in sheet order.
func SiteColumns() []string {
	return []string{
		"id",
		"nickname",
		"officialName",
		"serviceCategory",
		"servicePopulation",
		"eligibilitySummary",
		"neighborhood",
		"serviceRegion",
		"admissionType",
		"lockedStatus",
		"dropIn",
		"dropOff",
		"acceptedFrom",
		"intakeComplexity",
		"medicalClearance",
		"lengthOfStay",
		"transportIn",
		"transportOut",
		"transportSupport",
		"adaAccessible",
		"capacityConstraints",
		"hoursIntake",
		"hoursOperation",
		"bedsDph",
		"contact",
		"programAddress",
		"acceptsSelf",
		"acceptsCommunity",
		"acceptsStreetTeams",
		"acceptsPolice",
		"acceptsEms",
		"acceptsHospital",
		"acceptsBhac",
	}
}

// Field returns a pointer to the field backing the named column, or nil if the
// header is not a known column. Header names match exactly.
func (r *SiteRow) Field(name string) *string {
	switch name {
	case "id":
		return &r.ID
	case "nickname":
		return &r.Nickname
	case "officialName":
		return &r.OfficialName
	case "serviceCategory":
		return &r.ServiceCategory
	case "servicePopulation":
		return &r.ServicePopulation
	case "eligibilitySummary":
		return &r.EligibilitySummary
	case "neighborhood":
		return &r.Neighborhood
	case "serviceRegion":
		return &r.ServiceRegion
	case "admissionType":
		return &r.AdmissionType
	case "lockedStatus":
		return &r.LockedStatus
	case "dropIn":
		return &r.DropIn
	case "dropOff":
		return &r.DropOff
	case "acceptedFrom":
		return &r.AcceptedFrom
	case "intakeComplexity":
		return &r.IntakeComplexity
	case "medicalClearance":
		return &r.MedicalClearance
	case "lengthOfStay":
		return &r.LengthOfStay
	case "transportIn":
		return &r.TransportIn
	case "transportOut":
		return &r.TransportOut
	case "transportSupport":
		return &r.TransportSupport
	case "adaAccessible":
		return &r.ADAAccessible
	case "capacityConstraints":
		return &r.CapacityConstraints
	case "hoursIntake":
		return &r.HoursIntake
	case "hoursOperation":
		return &r.HoursOperation
	case "bedsDph":
		return &r.BedsDPH
	case "contact":
		return &r.Contact
	case "programAddress":
		return &r.ProgramAddress
	case "acceptsSelf":
		return &r.AcceptsSelf
	case "acceptsCommunity":
		return &r.AcceptsCommunity
	case "acceptsStreetTeams":
		return &r.AcceptsStreetTeams
	case "acceptsPolice":
		return &r.AcceptsPolice
	case "acceptsEms":
		return &r.AcceptsEMS
	case "acceptsHospital":
		return &r.AcceptsHospital
	case "acceptsBhac":
		return &r.AcceptsBHAC
	}
	return nil
}

// Values returns the row's cells in the same order as SiteColumns().
func (r *SiteRow) Values() []string {
	cols := SiteColumns()
	out := make([]string, len(cols))
	for i, name := range cols {
		out[i] = *r.Field(name)
	}
	return out
}
