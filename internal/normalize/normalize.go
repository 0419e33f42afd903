package normalize

import "github.com/gyeh/sitecards/internal/model"

// Describe derives the presentation descriptor for a row. It only reads the
// row and has no hidden state, so the same row always yields the same value.
func Describe(row *model.SiteRow) model.Descriptor {
	beds := row.BedsDPH
	if beds == "" {
		beds = "-"
	}
	return model.Descriptor{
		Key:      CardKey(row),
		Title:    DisplayTitle(row),
		Subtitle: Subtitle(row),
		Location: Location(row),
		Hours:    Hours(row),
		Beds:     beds,

		Category:   Category(row.ServiceCategory),
		Admission:  AdmissionClass(row.AdmissionType),
		Lock:       LockClass(row.LockedStatus),
		Complexity: SimplifyComplexity(row.IntakeComplexity),
		Medical:    SimplifyMedical(row.MedicalClearance),
		Stay:       LengthOfStay(row.LengthOfStay),

		DropIn:              InterpretYes(row.DropIn),
		DropOff:             InterpretYes(row.DropOff),
		NotADA:              InterpretNo(row.ADAAccessible),
		CapacityConstrained: CapacityConstrained(row.CapacityConstraints),
		TransportSupport:    HasTransportSupport(row.TransportSupport),

		Accepted:     Accepted(row),
		TransportIn:  TransportModes(row.TransportIn),
		TransportOut: TransportModes(row.TransportOut),

		Phone:  ExtractPhoneDigits(row.Contact),
		MapURL: MapURL(row.ProgramAddress),
	}
}

// DescribeAll derives descriptors for rows in order.
func DescribeAll(rows []model.SiteRow) []model.Descriptor {
	out := make([]model.Descriptor, len(rows))
	for i := range rows {
		out[i] = Describe(&rows[i])
	}
	return out
}
