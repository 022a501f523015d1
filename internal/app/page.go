package app

// Page identifies one screen of the application.
type Page int

const (
	PageLogin Page = iota
	PageBatches
	PageBatchDetail
	PageChapters
	PageContents
	PageQuiz
	PageProfile
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "login"
	case PageBatches:
		return "batches"
	case PageBatchDetail:
		return "batch"
	case PageChapters:
		return "chapters"
	case PageContents:
		return "contents"
	case PageQuiz:
		return "quiz"
	case PageProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// keymapContext maps a page to the binding context consulted for its keys.
// The player context is selected by presentation mode, not by page.
func (p Page) keymapContext() string {
	switch p {
	case PageLogin:
		return "login"
	case PageQuiz:
		return "quiz"
	default:
		return "list"
	}
}
