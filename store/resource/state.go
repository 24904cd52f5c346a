package resource

// Identifiable is implemented by every collection element.
type Identifiable interface {
	GetID() string
}

// Op names the collection operation an action belongs to.
type Op string

const (
	OpFetch  Op = "FETCH"
	OpCreate Op = "CREATE"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// ActionType is the phase of an operation, or one of the local transitions.
type ActionType string

const (
	Start        ActionType = "START"
	Success      ActionType = "SUCCESS"
	Failure      ActionType = "FAILURE"
	SetCurrent   ActionType = "SET_CURRENT"
	ClearCurrent ActionType = "CLEAR_CURRENT"
	ClearError   ActionType = "CLEAR_ERROR"
)

// Action is a state transition. Items carries a fetched list, Item a created or
// updated element, ID a deleted element and Message a failure.
type Action[T Identifiable] struct {
	Type    ActionType
	Op      Op
	Items   []T
	Item    *T
	ID      string
	Message string
}

// State is a client-side cache of one backend collection. Items is kept in
// insertion order.
type State[T Identifiable] struct {
	Items     []T    `json:"items"`
	Current   *T     `json:"current"`
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// Behavior toggles the per-resource differences in how current is maintained.
type Behavior struct {
	SetCurrentOnCreate   bool
	SetCurrentOnUpdate   bool
	ClearCurrentOnDelete bool
}

// Reduce applies a to s and returns the new state. It never mutates s.
func Reduce[T Identifiable](b Behavior, s State[T], a Action[T]) State[T] {
	switch a.Type {
	case Start:
		s.IsLoading = true
		s.Error = ""
	case Failure:
		s.IsLoading = false
		s.Error = a.Message
	case Success:
		s.IsLoading = false
		s.Error = ""
		switch a.Op {
		case OpFetch:
			s.Items = append(make([]T, 0, len(a.Items)), a.Items...)
		case OpCreate:
			if a.Item == nil {
				break
			}
			s.Items = appendItem(s.Items, *a.Item)
			if b.SetCurrentOnCreate {
				s.Current = ptr(*a.Item)
			}
		case OpUpdate:
			if a.Item == nil {
				break
			}
			s.Items = replaceItem(s.Items, *a.Item)
			if b.SetCurrentOnUpdate {
				s.Current = ptr(*a.Item)
			}
		case OpDelete:
			s.Items = removeItem(s.Items, a.ID)
			if b.ClearCurrentOnDelete {
				s.Current = nil
			}
		}
	case SetCurrent:
		if a.Item == nil {
			s.Current = nil
		} else {
			s.Current = ptr(*a.Item)
		}
	case ClearCurrent:
		s.Current = nil
	case ClearError:
		s.Error = ""
	}
	return s
}

func appendItem[T Identifiable](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// replaceItem swaps the element with item's id. A miss leaves the original
// slice untouched.
func replaceItem[T Identifiable](items []T, item T) []T {
	id := item.GetID()
	for i := range items {
		if items[i].GetID() == id {
			out := append([]T(nil), items...)
			out[i] = item
			return out
		}
	}
	return items
}

func removeItem[T Identifiable](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.GetID() != id {
			out = append(out, it)
		}
	}
	if len(out) == len(items) {
		return items
	}
	return out
}

func ptr[T any](v T) *T { return &v }
