package progress

// Category names an asynchronous resource the store tracks loading and
// error state for.
type Category string

const (
	CategoryMissions Category = "missions"
	CategoryLessons  Category = "lessons"
	CategoryProgress Category = "progress"
)

// AllCategories returns every tracked category in display order.
func AllCategories() []Category {
	return []Category{CategoryMissions, CategoryLessons, CategoryProgress}
}

// Status holds per-category loading flags and error messages. An empty
// message means no error.
type Status struct {
	Loading map[Category]bool
	Errors  map[Category]string
}

func newStatus() Status {
	s := Status{
		Loading: make(map[Category]bool),
		Errors:  make(map[Category]string),
	}
	for _, c := range AllCategories() {
		s.Loading[c] = false
		s.Errors[c] = ""
	}
	return s
}

// IsLoading reports whether work for c is in flight.
func (s Status) IsLoading(c Category) bool { return s.Loading[c] }

// Err returns the last error message recorded for c.
func (s Status) Err(c Category) string { return s.Errors[c] }

func (s Status) clone() Status {
	out := Status{
		Loading: make(map[Category]bool, len(s.Loading)),
		Errors:  make(map[Category]string, len(s.Errors)),
	}
	for k, v := range s.Loading {
		out.Loading[k] = v
	}
	for k, v := range s.Errors {
		out.Errors[k] = v
	}
	return out
}

// begin marks c as loading and clears its error.
func (s Status) begin(c Category) Status {
	out := s.clone()
	out.Loading[c] = true
	out.Errors[c] = ""
	return out
}

// settle clears the loading flag of c and records err's message, if any.
func (s Status) settle(c Category, err error) Status {
	out := s.clone()
	out.Loading[c] = false
	if err != nil {
		out.Errors[c] = err.Error()
	} else {
		out.Errors[c] = ""
	}
	return out
}
