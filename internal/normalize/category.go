package normalize

import "github.com/gyeh/sitecards/internal/model"

var categoryRules = []rule[model.CategoryClass]{
	{contains("mh acute"), model.CategoryMH},
	{contains("respite"), model.CategoryRespite},
	{contains("sud wm"), model.CategorySUDWM},
	{contains("sud subacute"), model.CategorySUDSubacute},
}

// Category maps a free-text service category onto a card color lane.
func Category(serviceCategory string) model.CategoryClass {
	return firstMatch(serviceCategory, categoryRules, model.CategoryNone)
}
