package timer

import "github.com/ayoisaiah/anuloma/internal/apperr"

var errNoController = &apperr.Error{
	Message: "the practice screen needs a running session",
}
