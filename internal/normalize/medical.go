package normalize

import "github.com/gyeh/sitecards/internal/model"

const iconMedical = "medical_information"

var medicalRules = []rule[model.Labeled]{
	{contains("tb"), model.Labeled{Label: "TB", Icon: "vaccines"}},
	{contains("ed"), model.Labeled{Label: "Through ED", Icon: "local_hospital"}},
	{contains("none", "no"), model.Labeled{Label: "None/basic", Icon: "check_circle"}},
}

// SimplifyMedical reduces a medical clearance description to a short label
// and icon. Unrecognized text passes through verbatim.
func SimplifyMedical(clearance string) model.Labeled {
	if blank(clearance) {
		return model.Labeled{Label: "-", Icon: iconMedical}
	}
	return firstMatch(clearance, medicalRules, model.Labeled{Label: clearance, Icon: iconMedical})
}
