package service

// Console is the interaction surface the workflow talks to the user
// through. Both calls block; Prompt returns one input line with
// surrounding whitespace stripped. Input validation is the caller's
// job, not the console's.
type Console interface {
	Prompt(text string) (string, error)
	Display(text string)
}
