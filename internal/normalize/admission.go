package normalize

import "github.com/gyeh/sitecards/internal/model"

// "both" wins over "voluntary" when a value mentions both.
var admissionRules = []rule[model.Admission]{
	{contains("both"), model.AdmissionDualKey},
	{contains("voluntary"), model.AdmissionVoluntary},
}

// "unlocked" must be tested before "locked", which it contains.
var lockRules = []rule[model.LockStatus]{
	{contains("unlocked"), model.LockUnlocked},
	{contains("both", "locked"), model.LockLocked},
}

// AdmissionClass classifies the admission type column.
func AdmissionClass(admissionType string) model.Admission {
	return firstMatch(admissionType, admissionRules, model.AdmissionUnknown)
}

// LockClass classifies the locked status column.
func LockClass(lockedStatus string) model.LockStatus {
	return firstMatch(lockedStatus, lockRules, model.LockUnknown)
}
