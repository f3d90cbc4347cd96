package stats

import "github.com/ayoisaiah/anuloma/internal/apperr"

var errReadHistory = &apperr.Error{
	Message: "unable to read the practice history",
}
