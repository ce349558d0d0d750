package domain

// Language is immutable reference data. IsSupported gates whether a tokenizer
// exists for the language; callers check the flag before submitting text.
type Language struct {
	Code        string
	Name        string
	IsSupported bool
}
