package domain

// AllModels feeds AutoMigrate. Parents come before children so the FK
// constraints can be created in one pass.
var AllModels = []interface{}{
	&DialectPair{},
	&PlausibilityItem{},
	&DialectEvaluation{},
	&PlausibilityEvaluation{},
	&Submission{},
	&StaffUser{},
}
