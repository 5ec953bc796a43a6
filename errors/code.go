package errors

const (
	UnknownReason = "UNKNOWN_REASON"
	UnknownCode   = 600

	Exhausted     = "WEIGHT_EXHAUSTED"
	ExhaustedCode = 430

	Scale     = "SCALE_INVALID"
	ScaleCode = 601

	Config     = "CONFIG_INVALID"
	ConfigCode = 602

	SupportPackageIsVersion1 = true
)
