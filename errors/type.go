package errors

func WeightExhausted(msg string) *Error {
	return New(ExhaustedCode, Exhausted, msg)
}

func IsWeightExhausted(err error) bool {
	return Code(err) == ExhaustedCode
}

func InvalidScale(msg string) *Error {
	return New(ScaleCode, Scale, msg)
}

func IsInvalidScale(err error) bool {
	return Code(err) == ScaleCode
}

func InvalidConfig(msg string) *Error {
	return New(ConfigCode, Config, msg)
}

func IsInvalidConfig(err error) bool {
	return Code(err) == ConfigCode
}
